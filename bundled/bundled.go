package bundled

import "embed"

// Dir is the directory inside FS that holds the bundled templates.
const Dir = "template"

// FS is the packaged template tree.
//
//go:embed template/*.yml
var FS embed.FS
