package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// kindRegex matches the kind part of an identifier, e.g. `Protein` or `GO_Term`.
var kindRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ParsePrefix validates an identifier prefix of the form `Kind::` and
// returns its kind.
func ParsePrefix(prefix string) (string, error) {
	kind, found := strings.CutSuffix(prefix, Separator)
	if !found {
		return "", fmt.Errorf("prefix %q must end with %q", prefix, Separator)
	}
	if !kindRegex.MatchString(kind) {
		return "", fmt.Errorf("prefix %q has an invalid kind %q", prefix, kind)
	}
	return kind, nil
}

// HasKind reports whether rawID starts with the `kind::` prefix. It does not
// validate the rest of the identifier and is meant for hot scan loops where
// upstream data may be noisy.
func HasKind(rawID, kind string) bool {
	return len(rawID) > len(kind)+len(Separator) &&
		strings.HasPrefix(rawID, kind) &&
		strings.HasPrefix(rawID[len(kind):], Separator)
}
