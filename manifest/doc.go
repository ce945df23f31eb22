// Package manifest parses one YAML page template document into a
// pagetemplate.Template. Document keys are renamed through a declarative
// FieldMapping before decoding, so files may spell attributes differently
// (english-name, english_name) from the canonical names (englishName).
package manifest
