package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
)

// Document represents a layout document: a tree of primitives plus the
// environment it is previewed in.
type Document struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Root        NodeSpec `yaml:"root"`
}

// Settings holds the default render environment.
type Settings struct {
	Platform string  `yaml:"platform,omitempty" validate:"omitempty,platform"`
	Width    float64 `yaml:"width,omitempty" validate:"gte=0"`
}

// NodeSpec is the YAML form of one layout node. Props stays a raw mapping
// node so values can be decoded per primitive with their source lines.
type NodeSpec struct {
	Kind     string     `yaml:"kind" validate:"required,kind"`
	Props    yaml.Node  `yaml:"props,omitempty"`
	Text     string     `yaml:"text,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// DefaultPlatform is used when a document does not name one.
const DefaultPlatform = tokens.PlatformIOS

// PlatformOrDefault returns the configured platform.
func (s Settings) PlatformOrDefault() (tokens.Platform, error) {
	if s.Platform == "" {
		return DefaultPlatform, nil
	}
	return tokens.ParsePlatform(s.Platform)
}
