package tree

import (
	"fmt"

	"github.com/dhamidi/xjava/java/lexer"
)

type Diagnostic struct {
	Message string
	Span    lexer.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Span.Start, d.Message)
}

// Diagnostics returns the error nodes below root in document order.
// Unexpanded lazy regions contribute nothing.
func Diagnostics(root *Node) []Diagnostic {
	var result []Diagnostic
	root.Walk(func(n *Node) bool {
		if n.Kind == KindError {
			result = append(result, Diagnostic{Message: n.Error, Span: n.Span})
		}
		return true
	})
	return result
}

// HasErrors reports whether any error node exists below root.
func HasErrors(root *Node) bool {
	found := false
	root.Walk(func(n *Node) bool {
		if n.Kind == KindError {
			found = true
		}
		return !found
	})
	return found
}
