// Package cli provides the interactive facecam command-line client.
//
// It wires configuration, the local session store, the camera service API and
// an interactive REPL. Typical flow: restore a saved session (or prompt to
// login / register), open the feed, and execute user commands. An optional
// background watcher keeps the feed fresh.
//
// Key features:
//   - Register / Login / Logout, with the service's refusal shown inline
//   - Feed: list frames, save a frame as a face, clear a frame, open or
//     download its image
//   - Settings: enroll / rename / exclude cameras, delete faces, set the
//     Telegram chat id
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartFeedWatcher, and runREPL for details.
package cli
