// Package docs holds the user documentation.
package docs

import (
	_ "embed"
)

//go:embed docs.md
var Markdown string
