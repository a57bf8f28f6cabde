package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/xjava/java/tree"
)

type JSONEncoder struct {
	w    io.Writer
	root *tree.Node
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(root *tree.Node) error {
	e.root = root
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(e.root, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
