// Package layout implements the Flex layout primitive, the primitives derived
// from it (Box, Stack, Inline), the Text primitive, and rendering of whole
// node trees.
package layout

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/flexkit/internal/breakpoint"
	"github.com/alexisbeaulieu97/flexkit/internal/responsive"
	"github.com/alexisbeaulieu97/flexkit/internal/style"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// flexClass is the base class every web flex container carries.
const flexClass = "flex"

// FlexProps is the full property set of the Flex primitive plus an optional
// caller supplied web class.
type FlexProps struct {
	style.Properties
	ClassName string
}

// Rendered is the platform output of one primitive. Native renders fill
// Style; web renders fill ClassName and, for text, Style.
type Rendered struct {
	Platform   tokens.Platform       `json:"-"`
	Breakpoint breakpoint.Breakpoint `json:"-"`
	Style      style.Style           `json:"style,omitempty"`
	ClassName  string                `json:"className,omitempty"`
}

// pass carries the single viewport measurement shared by a render pass.
type pass struct {
	platform   tokens.Platform
	breakpoint breakpoint.Breakpoint
}

func measure(host Host) (pass, error) {
	platform := host.Platform()
	if !platform.Valid() {
		return pass{}, fmt.Errorf("invalid host platform %d", int(platform))
	}
	ctx := pass{platform: platform}
	if platform.IsNative() {
		ctx.breakpoint = breakpoint.Select(host.ViewportWidth())
	}
	return ctx, nil
}

// Flex resolves props for host.
func Flex(host Host, props FlexProps) (Rendered, error) {
	ctx, err := measure(host)
	if err != nil {
		return Rendered{}, err
	}
	return ctx.flex(props)
}

func (c pass) flex(props FlexProps) (Rendered, error) {
	if !props.FlexDirection.IsSet() {
		props.FlexDirection = responsive.Scalar(tokens.DirectionColumn)
	}

	out := Rendered{Platform: c.platform, Breakpoint: c.breakpoint}
	if c.platform.IsNative() {
		s, err := style.ResolveNativeStyle(props.Properties, c.breakpoint, c.platform)
		if err != nil {
			return Rendered{}, err
		}
		out.Style = s
		return out, nil
	}

	responsiveClasses, err := style.ResolveWebClassName(props.Properties)
	if err != nil {
		return Rendered{}, err
	}
	out.ClassName = joinClasses(responsiveClasses, flexClass, props.ClassName)
	return out, nil
}

func joinClasses(parts ...string) string {
	kept := parts[:0:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
