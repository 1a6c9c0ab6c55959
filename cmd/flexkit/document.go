package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/flexkit/internal/config"
	"github.com/alexisbeaulieu97/flexkit/internal/layout"
	"github.com/alexisbeaulieu97/flexkit/internal/tokens"
	flexerrors "github.com/alexisbeaulieu97/flexkit/pkg/errors"
)

// documentOptions are the flags shared by commands that read a layout
// document.
type documentOptions struct {
	path     string
	platform string
	width    float64
}

func (o *documentOptions) addFlags(cmd *cobra.Command, withPlatform bool) {
	cmd.Flags().StringVarP(&o.path, "file", "f", "", "Layout document to read")
	cmd.Flags().Float64Var(&o.width, "width", -1, "Viewport width in pixels (overrides settings.width)")
	if withPlatform {
		cmd.Flags().StringVar(&o.platform, "platform", "", "Target platform: ios, android or web (overrides settings.platform)")
	}
	_ = cmd.MarkFlagRequired("file")
}

// loadedDocument is a parsed document ready to render.
type loadedDocument struct {
	doc  *config.Document
	host layout.StaticHost
	tree layout.Node
}

func validateDocumentPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("layout document is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve document path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("layout document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("document path %s is a directory", abs)
	}

	return nil
}

func loadDocument(operation string, opts documentOptions, root *rootFlags) (loadedDocument, error) {
	if err := validateDocumentPath(opts.path); err != nil {
		return loadedDocument{}, newCommandError(operation, "locating layout document", err, "Pass an existing YAML file with --file.")
	}

	log := root.log.WithDocument(opts.path)
	log.Debug("parsing layout document")

	doc, err := config.ParseDocument(opts.path)
	if err != nil {
		return loadedDocument{}, newCommandError(operation, "parsing layout document", err, documentSuggestion(err))
	}

	host, err := doc.Host(opts.width)
	if err != nil {
		return loadedDocument{}, newCommandError(operation, "reading document settings", err, "Use one of ios, android or web for settings.platform.")
	}
	if opts.platform != "" {
		platform, err := tokens.ParsePlatform(opts.platform)
		if err != nil {
			return loadedDocument{}, newCommandError(operation, "reading --platform", err, "Use one of ios, android or web.")
		}
		host.OS = platform
	}

	tree, err := doc.Tree()
	if err != nil {
		return loadedDocument{}, newCommandError(operation, "building layout tree", err, documentSuggestion(err))
	}

	log.WithFields(map[string]any{
		"platform": host.OS.String(),
		"width":    host.Width,
	}).Debug("layout document loaded")

	return loadedDocument{doc: doc, host: host, tree: tree}, nil
}

func documentSuggestion(err error) string {
	var parseErr *flexerrors.ParseError
	if errors.As(err, &parseErr) {
		return "Fix the YAML syntax at the reported line."
	}
	if errors.Is(err, flexerrors.ErrUnknownToken) {
		return "Run 'flexkit safelist' to see the supported tokens."
	}
	return "Check the field named in the error against the document format."
}

func (d loadedDocument) render(operation string, root *rootFlags) (layout.RenderedNode, error) {
	rendered, err := layout.Render(d.host, d.tree)
	if err != nil {
		return layout.RenderedNode{}, newCommandError(operation, "resolving layout", err, documentSuggestion(err))
	}
	root.log.Debug("layout resolved")
	return rendered, nil
}
