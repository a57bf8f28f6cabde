// Package format renders parse trees for people and tools: an indented
// tree dump, JSON, one diagnostic per line, and normalized Java source.
package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/xjava/java/tree"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(root *tree.Node) error
}

// New returns the encoder registered under name, or nil.
func New(name string, w io.Writer) Encoder {
	switch name {
	case "tree":
		return NewTreeEncoder(w)
	case "positions":
		return NewTreeEncoder(w, WithPositions())
	case "json":
		return NewJSONEncoder(w)
	case "diagnostics":
		return NewDiagnosticEncoder(w)
	case "java":
		return NewJavaEncoder(w)
	}
	return nil
}

// Names lists the encoder names accepted by New.
var Names = []string{"tree", "positions", "json", "diagnostics", "java"}

func write(w io.Writer, e encoding.TextMarshaler) error {
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
