package format

import (
	"io"

	"github.com/dhamidi/xjava/java/tree"
)

type TreeEncoder struct {
	w         io.Writer
	root      *tree.Node
	positions bool
}

type TreeOption func(*TreeEncoder)

// WithPositions adds the span of every node to the dump.
func WithPositions() TreeOption {
	return func(e *TreeEncoder) {
		e.positions = true
	}
}

func NewTreeEncoder(w io.Writer, opts ...TreeOption) *TreeEncoder {
	e := &TreeEncoder{w: w}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *TreeEncoder) Encode(root *tree.Node) error {
	e.root = root
	return write(e.w, e)
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	if e.root == nil {
		return nil, nil
	}
	if e.positions {
		return []byte(e.root.StringWithPositions()), nil
	}
	return []byte(e.root.String()), nil
}
