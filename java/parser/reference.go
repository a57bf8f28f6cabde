package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const (
	msgExpectedType = "Type expected"
	msgExpectedGT   = "'>' expected"
)

type referenceParser struct {
	j *JavaParser
}

// ParseTypeInfo parses an annotated type: a primitive, void, a wildcard
// or a possibly qualified and parameterized code reference, followed by
// array dimensions and, when flags allow it, an ellipsis, a union or an
// intersection.
func (r *referenceParser) ParseTypeInfo(b *tree.Builder, flags TypeFlags) *TypeInfo {
	typ := b.Mark()
	r.j.declarations.ParseAnnotations(b)

	info := &TypeInfo{}
	switch tokenType := b.TokenType(); {
	case tokenType == lexer.TokenQuestion && flags&TypeWildcard != 0:
		b.Advance()
		if b.Expect(lexer.TokenExtends) || b.Expect(lexer.TokenSuper) {
			if r.ParseTypeInfo(b, 0) == nil {
				b.Error(msgExpectedType)
			}
		}
		typ.Done(tree.KindType)
		info.Marker = typ
		return info
	case tokenType.IsPrimitive() || tokenType == lexer.TokenVoid:
		b.Advance()
		info.Primitive = true
	case tokenType == lexer.TokenIdent && b.TokenText() == "var" && flags&TypeVar != 0:
		b.RemapCurrentToken(lexer.TokenVar)
		b.Advance()
	case tokenType == lexer.TokenIdent:
		info.Parameterized = r.parseCodeReference(b, flags&TypeDiamonds != 0)
	default:
		typ.Rollback()
		return nil
	}

	for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
		b.AdvanceN(2)
		info.Array = true
	}
	if flags&TypeEllipsis != 0 && b.Expect(lexer.TokenEllipsis) {
		info.Array = true
	}
	typ.Done(tree.KindType)

	switch {
	case flags&TypeDisjunctions != 0 && b.TokenType() == lexer.TokenBitOr:
		typ = r.parseCompoundType(b, typ, lexer.TokenBitOr)
	case flags&TypeConjunctions != 0 && b.TokenType() == lexer.TokenBitAnd:
		typ = r.parseCompoundType(b, typ, lexer.TokenBitAnd)
	}
	info.Marker = typ
	return info
}

// parseCompoundType wraps first and the types joined to it by sep into one
// type node.
func (r *referenceParser) parseCompoundType(b *tree.Builder, first *tree.Marker, sep lexer.TokenKind) *tree.Marker {
	compound := first.Precede()
	for b.Expect(sep) {
		if r.ParseTypeInfo(b, 0) == nil {
			b.Error(msgExpectedType)
			break
		}
	}
	compound.Done(tree.KindType)
	return compound
}

// parseCodeReference parses Name<Args>.Name<Args>... and reports whether
// any segment carried type arguments.
func (r *referenceParser) parseCodeReference(b *tree.Builder, diamonds bool) bool {
	ref := b.Mark()
	b.Advance()
	parameterized := r.parseTypeArguments(b, diamonds)
	ref.Done(tree.KindCodeReference)

	for b.TokenType() == lexer.TokenDot {
		qualified := ref.Precede()
		probe := b.Mark()
		b.Advance()
		r.j.declarations.ParseAnnotations(b)
		if b.TokenType() != lexer.TokenIdent {
			probe.Rollback()
			qualified.Drop()
			break
		}
		probe.Drop()
		b.Advance()
		if r.parseTypeArguments(b, diamonds) {
			parameterized = true
		}
		qualified.Done(tree.KindCodeReference)
		ref = qualified
	}
	return parameterized
}

// parseTypeArguments parses <T, ...> and reports whether a complete list
// was found. An unterminated list is rolled back, which lets a < b be read
// as a comparison.
func (r *referenceParser) parseTypeArguments(b *tree.Builder, diamonds bool) bool {
	if b.TokenType() != lexer.TokenLT {
		return false
	}
	args := b.Mark()
	b.Advance()

	if b.TokenType() == lexer.TokenGT {
		if !diamonds {
			args.Rollback()
			return false
		}
		b.Advance()
		args.Done(tree.KindTypeArgumentList)
		return true
	}

	for {
		if r.ParseTypeInfo(b, TypeWildcard) == nil {
			args.Rollback()
			return false
		}
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	if !b.Expect(lexer.TokenGT) {
		args.Rollback()
		return false
	}
	args.Done(tree.KindTypeArgumentList)
	return true
}
