package types

import "errors"

var errUnknownName = errors.New("unknown name")

// parseName returns the index of s in names. Empty slots never match.
func parseName(names []string, s string) (int, error) {
	if s == "" {
		return 0, errUnknownName
	}
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, errUnknownName
}
