// Package pagetemplate defines the page template record served to the
// configuration management page, together with the errors shared by the
// parser (package manifest) and the loader/index (package catalog).
//
// Templates are loaded once at startup from a bundled root and an optional
// operator-configured directory; after that the collection is read-only.
package pagetemplate
