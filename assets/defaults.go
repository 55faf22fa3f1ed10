package assets

import (
	_ "embed"
)

// Banner is the block-letter title printed above the status bar.
//
//go:embed banner.txt
var Banner string
