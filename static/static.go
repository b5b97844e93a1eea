package static

import "embed"

//go:embed *.js *.css
var Content embed.FS
