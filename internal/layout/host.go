package layout

import "github.com/alexisbeaulieu97/flexkit/internal/tokens"

// Host is the rendering environment a primitive is resolved against.
type Host interface {
	Platform() tokens.Platform
	// ViewportWidth is only consulted on native platforms.
	ViewportWidth() float64
}

// StaticHost is a Host with a fixed platform and width.
type StaticHost struct {
	OS    tokens.Platform
	Width float64
}

// Platform implements Host.
func (h StaticHost) Platform() tokens.Platform { return h.OS }

// ViewportWidth implements Host.
func (h StaticHost) ViewportWidth() float64 { return h.Width }
