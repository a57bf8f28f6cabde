package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/xjava/java/tree"
)

// DiagnosticEncoder writes one line per error node:
//
//	Foo.java:3:14: ';' expected
//
// Positions carry the file name when the parser was given one.
type DiagnosticEncoder struct {
	w    io.Writer
	root *tree.Node
}

func NewDiagnosticEncoder(w io.Writer) *DiagnosticEncoder {
	return &DiagnosticEncoder{w: w}
}

func (e *DiagnosticEncoder) Encode(root *tree.Node) error {
	e.root = root
	return write(e.w, e)
}

func (e *DiagnosticEncoder) MarshalText() ([]byte, error) {
	if e.root == nil {
		return nil, nil
	}
	var sb strings.Builder
	for _, d := range tree.Diagnostics(e.root) {
		fmt.Fprintln(&sb, d.String())
	}
	return []byte(sb.String()), nil
}
