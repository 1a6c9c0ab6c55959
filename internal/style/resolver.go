package style

import (
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// ErrNotNative is returned when a native resolution is requested for the web
// platform.
var ErrNotNative = stdErrors.New("platform is not native")

// Style is a resolved native style: property name to concrete value.
type Style map[string]any

// Resolver turns a property set into a platform-specific output.
type Resolver[T any] interface {
	Resolve(props Properties) (T, error)
}

var (
	_ Resolver[Style]  = NativeResolver{}
	_ Resolver[string] = WebResolver{}
)

// NativeResolver resolves properties for a fixed native platform and
// breakpoint.
type NativeResolver struct {
	Platform   tokens.Platform
	Breakpoint breakpoint.Breakpoint
}

// Resolve builds the native style. Every set property contributes at most its
// own field, except shadow which expands into platform fields merged last.
func (r NativeResolver) Resolve(props Properties) (Style, error) {
	if !r.Platform.IsNative() {
		return nil, fmt.Errorf("%w: %s", ErrNotNative, r.Platform)
	}
	if !r.Breakpoint.Valid() {
		return nil, fmt.Errorf("invalid breakpoint %d", int(r.Breakpoint))
	}

	out := Style{}
	var expanded []map[string]any
	for _, b := range bindings {
		fields, err := b.native(&props, r.Breakpoint, r.Platform)
		if err != nil {
			return nil, wrapProperty(b.property, err)
		}
		if len(fields) == 0 {
			continue
		}
		if b.expands {
			expanded = append(expanded, fields)
			continue
		}
		for k, v := range fields {
			out[k] = v
		}
	}
	for _, fields := range expanded {
		for k, v := range fields {
			out[k] = v
		}
	}
	return out, nil
}

// ResolveNativeStyle resolves props for one breakpoint on a native platform.
func ResolveNativeStyle(props Properties, bp breakpoint.Breakpoint, platform tokens.Platform) (Style, error) {
	return NativeResolver{Platform: platform, Breakpoint: bp}.Resolve(props)
}

// WebResolver resolves properties into a space-separated class string.
type WebResolver struct{}

// Resolve emits classes in property declaration order, then slot order.
func (WebResolver) Resolve(props Properties) (string, error) {
	classes, err := WebClasses(props)
	if err != nil {
		return "", err
	}
	return strings.Join(classes, " "), nil
}

// WebClasses returns the individual classes for props.
func WebClasses(props Properties) ([]string, error) {
	var out []string
	for _, b := range bindings {
		classes, err := b.classes(&props)
		if err != nil {
			return nil, wrapProperty(b.property, err)
		}
		out = append(out, classes...)
	}
	return out, nil
}

// ResolveWebClassName resolves props into the web class string.
func ResolveWebClassName(props Properties) (string, error) {
	return WebResolver{}.Resolve(props)
}
