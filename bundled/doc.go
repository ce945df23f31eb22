// Package bundled carries the page templates packaged with the binary.
// FS holds them under Dir; the catalog scans that directory as its bundled root.
package bundled
