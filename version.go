package rufty

import _ "embed"

// Version is the current release, read from the VERSION file.
//
//go:embed VERSION
var Version string
