// Package catalog loads page templates once at startup and answers list and
// lookup queries against them.
//
// Initialize scans the bundled root first, then the external directory named
// by a PathProvider. Per-file and per-root failures are logged and skipped;
// Initialize itself never fails. After Initialize the collection is frozen,
// so ListAll and Lookup need no locking. Duplicate plugin names are allowed:
// Lookup returns the first one loaded, so bundled templates shadow external ones.
// Lookup compares the plugin english name exactly; templates without a plugin
// object are listed but never matched.
package catalog
