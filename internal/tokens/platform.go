package tokens

import "fmt"

// Platform identifies a rendering target.
type Platform int

const (
	PlatformWeb Platform = iota
	PlatformIOS
	PlatformAndroid
)

var platformNames = []string{"web", "ios", "android"}

// ParsePlatform parses a platform name.
func ParsePlatform(s string) (Platform, error) {
	i, err := parseName("platform", s, platformNames)
	return Platform(i), err
}

// IsNative reports whether the platform consumes style objects rather than
// class names.
func (p Platform) IsNative() bool {
	return p == PlatformIOS || p == PlatformAndroid
}

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	_, ok := nameOf(platformNames, int(p))
	return ok
}

func (p Platform) String() string {
	if name, ok := nameOf(platformNames, int(p)); ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}
