package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/skosovsky/pagetemplate"
	"github.com/skosovsky/pagetemplate/bundled"
	"github.com/skosovsky/pagetemplate/manifest"

	"golang.org/x/sync/errgroup"
)

// Ensures Catalog implements pagetemplate.Registry.
var _ pagetemplate.Registry = (*Catalog)(nil)

// State is the load state of a Catalog.
type State int32

const (
	StateUninitialized State = iota // New returned, Initialize not called yet
	StateLoading                    // Initialize is scanning roots
	StateReady                      // collection is frozen; terminal
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// RootReport summarizes what one scanned root contributed.
type RootReport struct {
	Kind     pagetemplate.RootKind
	Location string
	Loaded   int
	Failed   int
	Err      error // root-level failure; nil when the root was scanned
}

// Catalog is the template index. Build it with New, call Initialize once
// during startup, then serve reads. Reads before Initialize returns see an
// empty or partial collection.
type Catalog struct {
	bundledFS   fs.FS
	bundledDir  string
	paths       PathProvider
	parser      *manifest.Parser
	logger      *slog.Logger
	extensions  []string
	concurrency int
	openDir     func(dir string) fs.FS

	once    sync.Once
	state   atomic.Int32
	records []pagetemplate.Template
	byName  map[string]int // plugin english name -> first position in records
	reports []RootReport
}

// New creates a Catalog. It does not touch the filesystem until Initialize.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		bundledFS:   bundled.FS,
		bundledDir:  bundled.Dir,
		parser:      manifest.New(),
		logger:      slog.Default(),
		extensions:  []string{".yml", ".yaml"},
		concurrency: defaultConcurrency,
		openDir:     os.DirFS,
		byName:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current load state.
func (c *Catalog) State() State { return State(c.state.Load()) }

// Initialize loads the bundled root and then the external root. It runs once;
// later calls return immediately.
func (c *Catalog) Initialize() {
	c.once.Do(func() {
		c.state.Store(int32(StateLoading))
		c.load()
		c.state.Store(int32(StateReady))
		c.logger.Info("page templates ready", "templates", len(c.records), "roots", len(c.reports))
	})
}

func (c *Catalog) load() {
	if c.bundledFS != nil {
		c.loadBundled()
	}
	if c.paths == nil {
		return
	}
	dir := strings.TrimSpace(c.paths.GetTemplatePath())
	if dir == "" {
		c.logger.Debug("external template path not set")
		return
	}
	c.loadExternal(dir)
}

func (c *Catalog) loadBundled() {
	rep := RootReport{Kind: pagetemplate.RootBundled, Location: c.bundledDir}
	info, err := fs.Stat(c.bundledFS, c.bundledDir)
	if errors.Is(err, fs.ErrNotExist) {
		c.logger.Debug("bundled template root not present", "dir", c.bundledDir)
		return
	}
	if err == nil && !info.IsDir() {
		err = errors.New("not a directory")
	}
	if err != nil {
		c.rootFailed(&rep, err)
		return
	}
	c.scan(c.bundledFS, c.bundledDir, &rep)
}

func (c *Catalog) loadExternal(dir string) {
	rep := RootReport{Kind: pagetemplate.RootExternal, Location: dir}
	fsys := c.openDir(dir)
	info, err := fs.Stat(fsys, ".")
	if err == nil && !info.IsDir() {
		err = errors.New("not a directory")
	}
	if err != nil {
		c.rootFailed(&rep, err)
		return
	}
	c.scan(fsys, ".", &rep)
}

func (c *Catalog) rootFailed(rep *RootReport, err error) {
	rep.Err = &pagetemplate.SourceError{
		Root: rep.Location,
		Err:  fmt.Errorf("%w: %w", pagetemplate.ErrRootResolution, err),
	}
	c.logger.Error("failed to resolve page template root", "root", rep.Kind, "location", rep.Location, "err", rep.Err)
	c.reports = append(c.reports, *rep)
}

type parseResult struct {
	tpl pagetemplate.Template
	err error
}

// scan parses the matching regular files directly under dir and appends them in
// directory order. Parsing runs in parallel; appending happens here only.
func (c *Catalog) scan(fsys fs.FS, dir string, rep *RootReport) {
	defer func() { c.reports = append(c.reports, *rep) }()
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		rep.Err = &pagetemplate.SourceError{
			Root: rep.Location,
			Err:  fmt.Errorf("%w: %w", pagetemplate.ErrStreamIO, err),
		}
		c.logger.Error("failed to list page template root", "root", rep.Kind, "location", rep.Location, "err", rep.Err)
		return
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(c.extensions, path.Ext(e.Name())) {
			continue
		}
		name := path.Join(dir, e.Name())
		// Stat follows symlinks, so a link to a regular file is accepted.
		info, err := fs.Stat(fsys, name)
		if err != nil || !info.Mode().IsRegular() {
			c.logger.Debug("skip non-regular template entry", "root", rep.Kind, "file", name, "err", err)
			continue
		}
		files = append(files, name)
	}

	results := make([]parseResult, len(files))
	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, name := range files {
		g.Go(func() error {
			tpl, err := c.parser.ParseFS(fsys, name)
			results[i] = parseResult{tpl: tpl, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, r := range results {
		if r.err != nil {
			rep.Failed++
			err := &pagetemplate.SourceError{Root: rep.Location, File: files[i], Err: r.err}
			c.logger.Warn("skip page template file", "root", rep.Kind, "file", files[i], "err", err)
			continue
		}
		r.tpl.Origin = pagetemplate.Origin{Root: rep.Kind, Path: originPath(rep, files[i])}
		c.add(r.tpl)
		rep.Loaded++
	}
	c.logger.Debug("scanned page template root", "root", rep.Kind, "location", rep.Location, "loaded", rep.Loaded, "failed", rep.Failed)
}

// originPath returns the fs.FS name for bundled files and the OS path for external ones.
func originPath(rep *RootReport, name string) string {
	if rep.Kind == pagetemplate.RootExternal {
		return filepath.Join(rep.Location, filepath.FromSlash(name))
	}
	return name
}

func (c *Catalog) add(tpl pagetemplate.Template) {
	c.records = append(c.records, tpl)
	if tpl.Plugin == nil {
		return
	}
	name := tpl.Plugin.EnglishName
	if _, ok := c.byName[name]; !ok {
		c.byName[name] = len(c.records) - 1
	}
}

// ListAll returns every loaded template in load order.
func (c *Catalog) ListAll() []pagetemplate.Template {
	out := make([]pagetemplate.Template, len(c.records))
	for i, tpl := range c.records {
		out[i] = pagetemplate.CloneTemplate(tpl)
	}
	return out
}

// Lookup returns the first loaded template whose plugin english name equals
// pluginName exactly. Templates without a plugin object never match.
func (c *Catalog) Lookup(pluginName string) (pagetemplate.Template, bool) {
	i, ok := c.byName[pluginName]
	if !ok {
		return pagetemplate.Template{}, false
	}
	return pagetemplate.CloneTemplate(c.records[i]), true
}

// Report returns a summary per scanned root, in scan order.
func (c *Catalog) Report() []RootReport {
	return slices.Clone(c.reports)
}
