// Package levels embeds the bundled TMX levels.
package levels

import "embed"

//go:embed *.tmx
var FS embed.FS

// Default is the level loaded when none is named.
const Default = "level1.tmx"
