package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

// The statement parser consumes these services. Each returns a completed
// marker on success and nil on failure; a failing call leaves the cursor
// where it found it and records nothing.

type ExpressionParser interface {
	Parse(b *tree.Builder) *tree.Marker

	// ParseAssignmentForbiddingLambda parses an assignment-level expression
	// in which ident -> is not a lambda, as in case labels and guards.
	ParseAssignmentForbiddingLambda(b *tree.Builder) *tree.Marker

	// ParseTupleOrExpr parses a return value, accepting tuple forms when
	// they are enabled.
	ParseTupleOrExpr(b *tree.Builder) *tree.Marker
}

type DeclarationParser interface {
	Parse(b *tree.Builder, ctx DeclContext) *tree.Marker
	ParseAnnotations(b *tree.Builder) bool
	ParseParameter(b *tree.Builder, opts ParamOptions) *tree.Marker
	ParseResourceList(b *tree.Builder) *tree.Marker
}

type PatternParser interface {
	IsPattern(b *tree.Builder) bool

	// PreParsePattern consumes the modifiers and type that start a pattern
	// and returns the still open marker in front of them. The caller must
	// roll it back. It returns nil when no type follows.
	PreParsePattern(b *tree.Builder) *tree.Marker

	ParsePattern(b *tree.Builder) *tree.Marker
}

type ReferenceParser interface {
	ParseTypeInfo(b *tree.Builder, flags TypeFlags) *TypeInfo
}

// RegionHandler receives fragment tokens met at statement position.
type RegionHandler interface {
	HandleRegion(tok lexer.Token)
}

// RegionHandlerFunc adapts a function to RegionHandler.
type RegionHandlerFunc func(tok lexer.Token)

func (f RegionHandlerFunc) HandleRegion(tok lexer.Token) {
	f(tok)
}

type DeclContext int

const (
	ContextFile DeclContext = iota
	ContextClass
	ContextCodeBlock
	ContextAnnotationInterface
)

var declContextNames = map[DeclContext]string{
	ContextFile:                "file",
	ContextClass:               "class",
	ContextCodeBlock:           "code block",
	ContextAnnotationInterface: "annotation interface",
}

func (c DeclContext) String() string {
	if name, ok := declContextNames[c]; ok {
		return name
	}
	return "unknown"
}

type ParamOptions struct {
	// Ellipsis accepts a variable arity parameter.
	Ellipsis bool

	// Disjunction accepts union types as in catch (A | B e).
	Disjunction bool

	// VarType accepts var as the parameter type.
	VarType bool
}

type TypeFlags int

const (
	TypeEllipsis TypeFlags = 1 << iota
	TypeDiamonds
	TypeDisjunctions
	TypeConjunctions
	TypeWildcard
	TypeVar
)

// TypeInfo describes a type parsed by a ReferenceParser.
type TypeInfo struct {
	Marker        *tree.Marker
	Parameterized bool
	Primitive     bool
	Array         bool
}
