// Package markline carries the release version of the markline editor.
package markline

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release in SemVer form, without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the line printed by `markline --version`.
func Banner() string {
	if !IsSemver(Version()) {
		return "markline (devel)"
	}
	return fmt.Sprintf("markline v%s", Version())
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
