package dex

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldName normalises an identifier for lookups: case-folded, with
// separators and punctuation removed ("Double-Edge" == "double edge").
func foldName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '+', '\'', '.':
			return -1
		}
		return r
	}, name)
	return cases.Fold().String(name)
}

func parseName[T ~uint8](names []string, name string) (T, bool) {
	key := foldName(name)
	for i, n := range names {
		if foldName(n) == key {
			return T(i), true
		}
	}
	return 0, false
}
