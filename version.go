package grievanceflow

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the release of the generator, as recorded in the VERSION file.
var Version = strings.TrimSpace(version)
