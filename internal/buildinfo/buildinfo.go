// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X uf2splash/internal/buildinfo.Version=v1.2.0 -X uf2splash/internal/buildinfo.Commit=$(git rev-parse HEAD)"
package buildinfo

import "strings"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

const shortCommit = 7

// Short returns the release version when one was stamped, otherwise a
// shortened commit, otherwise "dev".
func Short() string {
	if v := strings.TrimSpace(Version); v != "" && v != "dev" {
		return v
	}
	if c := commit(); c != "" {
		return c
	}
	return "dev"
}

// Splash returns the text drawn under the title. Development builds carry
// the commit so a flashed board can be traced back to its source.
func Splash() string {
	v := Short()
	c := commit()
	if c == "" || v == c {
		return v
	}
	if strings.HasPrefix(v, "v") || v == "dev" {
		return v + "+" + c
	}
	return v
}

func commit() string {
	c := strings.TrimSpace(Commit)
	if c == "" || c == "unknown" {
		return ""
	}
	if len(c) > shortCommit {
		c = c[:shortCommit]
	}
	return c
}
