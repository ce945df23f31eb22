package manifest

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/skosovsky/pagetemplate"

	"gopkg.in/yaml.v3"
)

// Parser converts YAML documents into templates. It is immutable after New
// and safe for concurrent use.
type Parser struct {
	mapping FieldMapping
}

// Option configures a Parser.
type Option func(*options)

type options struct {
	noDefaults bool
	extra      FieldMapping
}

// WithFieldMapping adds entries to the mapping table; entries override defaults with the same path.
func WithFieldMapping(m FieldMapping) Option {
	return func(o *options) {
		if o.extra == nil {
			o.extra = FieldMapping{}
		}
		for k, v := range m {
			o.extra[k] = v
		}
	}
}

// WithoutDefaultMapping drops DefaultFieldMapping; only WithFieldMapping entries apply.
func WithoutDefaultMapping() Option {
	return func(o *options) { o.noDefaults = true }
}

// New creates a Parser. Without options it applies DefaultFieldMapping.
func New(opts ...Option) *Parser {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	m := FieldMapping{}
	if !o.noDefaults {
		m = DefaultFieldMapping()
	}
	for k, v := range o.extra {
		m[k] = v
	}
	return &Parser{mapping: m.clone()}
}

// Parse reads one document from r and decodes it.
func (p *Parser) Parse(r io.Reader) (pagetemplate.Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return pagetemplate.Template{}, fmt.Errorf("%w: read: %w", pagetemplate.ErrStreamIO, err)
	}
	return p.ParseBytes(data)
}

// ParseFS reads and parses name from fsys. The file is closed before returning.
func (p *Parser) ParseFS(fsys fs.FS, name string) (pagetemplate.Template, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return pagetemplate.Template{}, fmt.Errorf("%w: %w", pagetemplate.ErrStreamIO, err)
	}
	return p.ParseBytes(data)
}

// ParseBytes parses a YAML document. Only the first document of a stream is used.
func (p *Parser) ParseBytes(data []byte) (pagetemplate.Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return pagetemplate.Template{}, fmt.Errorf("%w: %w", pagetemplate.ErrParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return pagetemplate.Template{}, fmt.Errorf("%w: empty document", pagetemplate.ErrParse)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return pagetemplate.Template{}, fmt.Errorf("%w: line %d: top level must be a mapping", pagetemplate.ErrParse, root.Line)
	}
	p.mapping.apply(root, "")
	var tpl pagetemplate.Template
	if err := root.Decode(&tpl); err != nil {
		return pagetemplate.Template{}, fmt.Errorf("%w: %w", pagetemplate.ErrParse, err)
	}
	return tpl, nil
}

var defaultParser = New()

// ParseBytes parses data with DefaultFieldMapping.
func ParseBytes(data []byte) (pagetemplate.Template, error) {
	return defaultParser.ParseBytes(data)
}

// ParseFS reads and parses name from fsys with DefaultFieldMapping.
func ParseFS(fsys fs.FS, name string) (pagetemplate.Template, error) {
	return defaultParser.ParseFS(fsys, name)
}

// Encode writes templates as a YAML stream, one document per template.
func Encode(w io.Writer, templates []pagetemplate.Template) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	for i := range templates {
		if err := enc.Encode(&templates[i]); err != nil {
			return fmt.Errorf("manifest: encode template %d: %w", i, err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("manifest: encode: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("manifest: write: %w", err)
	}
	return nil
}
