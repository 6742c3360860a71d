// Package render writes an assembled tree as an indented text listing or as JSON.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/tree"
)

// ErrUnknownFormat is returned by New for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

const errorUnknownFormatFormat = "%w %q"

// Renderer writes a tree to an output stream.
type Renderer interface {
	Render(writer io.Writer, assembled *tree.Tree) error
}

// Options tune the text renderer.
type Options struct {
	// Color enables styling of names and sizes.
	Color bool
	// Footer appends the entry summary line.
	Footer bool
}

// New returns the renderer registered for format.
func New(format string, options Options) (Renderer, error) {
	switch format {
	case config.FormatTree, "":
		return NewTextRenderer(options), nil
	case config.FormatJSON:
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf(errorUnknownFormatFormat, ErrUnknownFormat, format)
	}
}
