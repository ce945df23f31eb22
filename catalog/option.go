package catalog

import (
	"io/fs"
	"log/slog"

	"github.com/skosovsky/pagetemplate/manifest"
)

const defaultConcurrency = 4

// PathProvider supplies the external template directory. An empty path disables the external root.
type PathProvider interface {
	GetTemplatePath() string
}

// PathFunc adapts a function to PathProvider.
type PathFunc func() string

// GetTemplatePath implements PathProvider.
func (f PathFunc) GetTemplatePath() string { return f() }

// Option configures a Catalog (functional options pattern).
type Option func(*Catalog)

// WithBundled sets the bundled root to dir inside fsys. Default is bundled.FS / bundled.Dir.
func WithBundled(fsys fs.FS, dir string) Option {
	return func(c *Catalog) {
		c.bundledFS = fsys
		c.bundledDir = dir
	}
}

// WithoutBundled disables the bundled root.
func WithoutBundled() Option {
	return func(c *Catalog) { c.bundledFS = nil }
}

// WithPathProvider sets the source of the external root path.
func WithPathProvider(p PathProvider) Option {
	return func(c *Catalog) { c.paths = p }
}

// WithParser sets the parser used for every file. Default is manifest.New().
func WithParser(p *manifest.Parser) Option {
	return func(c *Catalog) {
		if p != nil {
			c.parser = p
		}
	}
}

// WithLogger sets the logger. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithExtensions sets the file extensions scanned in each root, e.g. ".yml".
// Matching is case-sensitive. Default is ".yml" and ".yaml".
func WithExtensions(exts ...string) Option {
	return func(c *Catalog) { c.extensions = exts }
}

// WithConcurrency bounds how many files of one root are parsed in parallel. n < 1 means 1.
func WithConcurrency(n int) Option {
	return func(c *Catalog) {
		c.concurrency = max(n, 1)
	}
}
