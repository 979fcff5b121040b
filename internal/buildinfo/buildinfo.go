// Package buildinfo exposes build metadata stamped in via -ldflags.
package buildinfo

import (
	"fmt"
	"io"
)

// Set at build time, e.g.:
//
//	go build -ldflags "-X .../buildinfo.Version=1.2.0 -X .../buildinfo.BuildDate=2026-08-29"
var (
	Version   = "N/A"
	BuildDate = "N/A"
)

// PrintBuildData writes the build stamp to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
}
