package docs

import "embed"

//go:embed *.md
var topics embed.FS
