// Recomendador - Bilingual Content Recommendation Catalog
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recomendador

/*
Package websocket pushes session state to connected observers.

A Hub owns the set of connected clients and fans out every Message it is
given. The session registers Hub.Observe as an observer, so each completed
transition reaches every client as a "state" message carrying the read-only
session state:

	{"type":"state","data":{"view":{...},"filters":{...},"language":"es",...}}

Each Client runs two goroutines:
  - readPump: reads client frames and answers "ping" messages with "pong"
  - writePump: writes queued messages and keeps the connection alive

Delivery is best effort. A client whose send buffer is full is dropped; the
next message it would have received supersedes the lost one anyway because
every state message is a full snapshot.

The hub runs under the supervisor through RunWithContext and closes every
client when its context ends.
*/
package websocket
