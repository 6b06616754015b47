package root

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errUnknownID   = errors.New("no match")
	errAmbiguousID = errors.New("ambiguous id prefix")
)

// resolveID matches input against ids exactly or by unique prefix.
func resolveID(kind string, ids []string, input string) (string, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return "", fmt.Errorf("%s id is required", kind)
	}
	var matches []string
	for _, id := range ids {
		if id == in {
			return id, nil
		}
		if strings.HasPrefix(id, in) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s %q: %w", kind, in, errUnknownID)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s %q matches %d ids: %w", kind, in, len(matches), errAmbiguousID)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
