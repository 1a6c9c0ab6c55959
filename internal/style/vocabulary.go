package style

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// Vocabulary lists every class the web resolver can emit for a token value,
// unscoped and scoped, sorted and without duplicates. Arbitrary factor
// classes such as grow-[3] are open-ended and left out.
func Vocabulary() []string {
	var bases []string
	add := func(class string, err error) {
		if err == nil {
			bases = append(bases, class)
		}
	}

	for _, d := range tokens.Directions() {
		add(d.Class())
	}
	for _, j := range tokens.Justifies() {
		add(j.Class())
	}
	for _, a := range tokens.AlignItemsValues() {
		add(a.Class())
	}
	for _, a := range tokens.AlignContents() {
		add(a.Class())
	}
	for _, a := range tokens.AlignSelves() {
		add(a.Class())
	}
	for _, w := range tokens.Wraps() {
		add(w.Class())
	}
	for _, axis := range []string{tokens.FactorGrow, tokens.FactorShrink, tokens.FactorBasis} {
		add(tokens.FactorClass(axis, 0))
		add(tokens.FactorClass(axis, 1))
	}
	for _, prefix := range spacingPrefixes {
		for _, s := range tokens.Spacings() {
			add(spacingClass(prefix)(s))
		}
	}
	for _, s := range tokens.Spacings() {
		add(s.RadiusClass())
	}
	for _, s := range tokens.Shadows() {
		add(s.Class())
	}
	for _, c := range tokens.Colors() {
		add(c.BackgroundClass())
	}
	for _, a := range tokens.TextAligns() {
		add(a.Class())
	}

	out := make([]string, 0, len(bases)*(breakpoint.Count+1))
	for _, base := range bases {
		out = append(out, base)
		for _, bp := range breakpoint.All() {
			out = append(out, ScopedClass(base, bp))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

var cssEscaper = strings.NewReplacer(":", `\:`, "[", `\[`, "]", `\]`, ".", `\.`)

// ShadowRules returns the CSS rules backing the shadow classes: an unscoped
// rule per token and a scoped rule per breakpoint inside its media query.
func ShadowRules() ([]string, error) {
	rules := make([]string, 0, len(tokens.Shadows())*(breakpoint.Count+1))
	for _, s := range tokens.Shadows() {
		class, err := s.Class()
		if err != nil {
			return nil, err
		}
		value, err := s.BoxShadow()
		if err != nil {
			return nil, err
		}

		declaration := fmt.Sprintf("{ box-shadow: %s; }", value)
		rules = append(rules, fmt.Sprintf(".%s %s", cssEscaper.Replace(class), declaration))
		for _, bp := range breakpoint.All() {
			scoped := cssEscaper.Replace(ScopedClass(class, bp))
			rules = append(rules, fmt.Sprintf("@media %s { .%s %s }", bp.MediaQuery(), scoped, declaration))
		}
	}
	return rules, nil
}
