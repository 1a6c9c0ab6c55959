// Package tokens holds the design-system token tables.
//
// Every token category is a closed enumeration. Lookups are total switches over
// the enumeration and return a *errors.TokenError for anything outside it, so
// an unknown token always fails instead of silently resolving to a default.
//
// Spacing and colour map to the same physical values on every platform. Shadow
// is the one category whose physical form differs per platform: web uses a
// box-shadow descriptor, iOS uses shadow colour/offset/opacity/radius and
// Android uses a single elevation number.
package tokens

import (
	"strconv"

	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// parseName returns the index of s in names.
func parseName(category, s string, names []string) (int, error) {
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, flexerrors.NewTokenError(category, s)
}

func nameOf(names []string, i int) (string, bool) {
	if i < 0 || i >= len(names) {
		return "", false
	}
	return names[i], true
}

func invalid(category string, i int) error {
	return flexerrors.NewTokenError(category, strconv.Itoa(i))
}

func enumerate[T ~int](names []string) []T {
	out := make([]T, len(names))
	for i := range names {
		out[i] = T(i)
	}
	return out
}
