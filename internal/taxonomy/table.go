// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package taxonomy

import "github.com/tomtom215/recomendador/internal/models"

// Key is a language-neutral subcategory identifier.
type Key string

func (k Key) String() string { return string(k) }

// entry is one row of the bilingual table. Labels are display-cased.
type entry struct {
	Key Key
	ES  string
	EN  string
}

// entries is the complete ES/EN vocabulary across all categories.
var entries = []entry{
	// Film and television
	{"action", "Acción", "Action"},
	{"adventure", "Aventura", "Adventure"},
	{"animation", "Animación", "Animation"},
	{"comedy", "Comedia", "Comedy"},
	{"crime", "Crimen", "Crime"},
	{"drama", "Drama", "Drama"},
	{"family", "Familiar", "Family"},
	{"fantasy", "Fantasía", "Fantasy"},
	{"historical", "Histórico", "Historical"},
	{"horror", "Terror", "Horror"},
	{"musical", "Musical", "Musical"},
	{"mystery", "Misterio", "Mystery"},
	{"romance", "Romance", "Romance"},
	{"science-fiction", "Ciencia ficción", "Science fiction"},
	{"thriller", "Suspense", "Thriller"},
	{"war", "Bélico", "War"},
	{"western", "Western", "Western"},

	// Books
	{"novel", "Novela", "Novel"},
	{"essay", "Ensayo", "Essay"},
	{"poetry", "Poesía", "Poetry"},
	{"biography", "Biografía", "Biography"},
	{"self-help", "Autoayuda", "Self-help"},
	{"philosophy", "Filosofía", "Philosophy"},
	{"classic", "Clásico", "Classic"},

	// Comics
	{"manga", "Manga", "Manga"},
	{"superheroes", "Superhéroes", "Superheroes"},
	{"graphic-novel", "Novela gráfica", "Graphic novel"},
	{"european-comic", "Cómic europeo", "European comic"},

	// Music
	{"rock", "Rock", "Rock"},
	{"pop", "Pop", "Pop"},
	{"jazz", "Jazz", "Jazz"},
	{"classical", "Clásica", "Classical"},
	{"electronic", "Electrónica", "Electronic"},
	{"hip-hop", "Hip hop", "Hip hop"},
	{"metal", "Metal", "Metal"},
	{"folk", "Folk", "Folk"},
	{"indie", "Independiente", "Indie"},
	{"soundtrack", "Banda sonora", "Soundtrack"},

	// Videogames
	{"sandbox", "Mundo abierto", "Sandbox"},
	{"rpg", "Rol", "RPG"},
	{"platformer", "Plataformas", "Platformer"},
	{"shooter", "Disparos", "Shooter"},
	{"strategy", "Estrategia", "Strategy"},
	{"puzzle", "Puzles", "Puzzle"},
	{"sports", "Deportes", "Sports"},
	{"racing", "Carreras", "Racing"},
	{"simulation", "Simulación", "Simulation"},

	// Boardgames
	{"cards", "Cartas", "Cards"},
	{"economic", "Económico", "Economic"},
	{"cooperative", "Cooperativo", "Cooperative"},
	{"party", "Fiesta", "Party"},
	{"abstract", "Abstracto", "Abstract"},
	{"dice", "Dados", "Dice"},

	// Documentaries and podcasts
	{"nature", "Naturaleza", "Nature"},
	{"history", "Historia", "History"},
	{"science", "Ciencia", "Science"},
	{"society", "Sociedad", "Society"},
	{"true-crime", "Crimen real", "True crime"},
	{"art", "Arte", "Art"},
	{"technology", "Tecnología", "Technology"},
	{"travel", "Viajes", "Travel"},
	{"humor", "Humor", "Humor"},
	{"interviews", "Entrevistas", "Interviews"},
	{"news", "Actualidad", "News"},
}

// staticSubcategories lists the keys offered for each category. Documentaries
// are absent on purpose: they are discovered from the catalog.
var staticSubcategories = map[models.Category][]Key{
	models.CategoryMovies: {
		"action", "adventure", "animation", "comedy", "crime", "drama", "family", "fantasy",
		"historical", "horror", "musical", "mystery", "romance", "science-fiction", "thriller", "war", "western",
	},
	models.CategorySeries: {
		"action", "animation", "comedy", "crime", "drama", "fantasy", "horror", "mystery", "science-fiction", "thriller",
	},
	models.CategoryBooks: {
		"novel", "essay", "poetry", "biography", "history", "self-help", "philosophy", "classic",
		"fantasy", "science-fiction", "mystery", "horror",
	},
	models.CategoryComics: {
		"manga", "superheroes", "graphic-novel", "european-comic", "horror", "humor",
	},
	models.CategoryMusic: {
		"rock", "pop", "jazz", "classical", "electronic", "hip-hop", "metal", "folk", "indie", "soundtrack",
	},
	models.CategoryVideogames: {
		"action", "adventure", "sandbox", "rpg", "platformer", "shooter", "strategy", "puzzle",
		"sports", "racing", "simulation", "indie", "horror",
	},
	models.CategoryBoardgames: {
		"cards", "economic", "cooperative", "party", "strategy", "abstract", "dice", "family",
	},
	models.CategoryPodcast: {
		"humor", "interviews", "news", "history", "science", "technology", "true-crime",
	},
}

var (
	byKey   map[Key]entry
	byLabel map[string]Key
)

func init() {
	byKey, byLabel, _ = buildIndex(entries)
}

// buildIndex indexes entries by key and by every normalized label. The first
// entry wins on a clash; clashes are returned so tests can reject them.
func buildIndex(es []entry) (map[Key]entry, map[string]Key, []string) {
	keys := make(map[Key]entry, len(es))
	labels := make(map[string]Key, len(es)*3)
	var clashes []string

	add := func(label string, k Key) {
		n := normalizeLabel(label)
		if prev, ok := labels[n]; ok && prev != k {
			clashes = append(clashes, n+": "+string(prev)+" vs "+string(k))
			return
		}
		labels[n] = k
	}

	for _, e := range es {
		if _, dup := keys[e.Key]; dup {
			clashes = append(clashes, "duplicate key "+string(e.Key))
			continue
		}
		keys[e.Key] = e
		add(string(e.Key), e.Key)
	}
	for _, e := range es {
		add(e.ES, e.Key)
		add(e.EN, e.Key)
	}
	return keys, labels, clashes
}
