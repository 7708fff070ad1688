// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tomtom215/recomendador/internal/catalog"
	"github.com/tomtom215/recomendador/internal/logging"
	"github.com/tomtom215/recomendador/internal/models"
	"github.com/tomtom215/recomendador/internal/session"
)

// errNoCatalogFiles keeps the current catalog when the directory exists but
// holds no category file, e.g. halfway through a redeploy.
var errNoCatalogFiles = errors.New("no catalog files found")

// catalogReloader feeds the session from the catalog directory. A reload is
// skipped while the category files keep their size and modification time.
type catalogReloader struct {
	dir     string
	session *session.Session

	mu          sync.Mutex
	fingerprint string
}

func newCatalogReloader(dir string, sess *session.Session) *catalogReloader {
	return &catalogReloader{dir: dir, session: sess}
}

// Reload implements services.Reloader.
func (r *catalogReloader) Reload(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fp, err := dirFingerprint(r.dir)
	if err != nil {
		return false, err
	}
	if fp == "" {
		return false, fmt.Errorf("catalog directory %s: %w", r.dir, errNoCatalogFiles)
	}
	if fp == r.fingerprint {
		return false, nil
	}

	items, report, err := catalog.LoadDir(r.dir)
	if err != nil {
		return false, err
	}
	st := r.session.LoadCatalog(ctx, items)
	r.fingerprint = fp

	logging.CtxInfo(ctx).
		Str("dir", r.dir).
		Int("files", report.Files).
		Int("rejected", report.Rejected).
		Uint64("revision", st.CatalogRevision).
		Msg("Catalog applied to session")
	return true, nil
}

// dirFingerprint summarizes the category files of dir. It is empty when no
// category file exists.
func dirFingerprint(dir string) (string, error) {
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("catalog directory %s: %w", dir, err)
	}

	var b strings.Builder
	for _, cat := range models.Categories {
		info, err := os.Stat(filepath.Join(dir, string(cat)+".json"))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat %s catalog: %w", cat, err)
		}
		fmt.Fprintf(&b, "%s:%d:%d;", cat, info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}
