// Package build carries build provenance injected via ldflags.
package build

// Info describes the binary's build provenance.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}
