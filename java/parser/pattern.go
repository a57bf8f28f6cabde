package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const msgExpectedPattern = "Pattern expected"

type patternParser struct {
	j *JavaParser
}

// IsPattern reports whether a type pattern or record pattern starts at the
// cursor. It consumes nothing.
func (p *patternParser) IsPattern(b *tree.Builder) bool {
	if p.atUnnamed(b) {
		return true
	}
	probe := p.PreParsePattern(b)
	if probe == nil {
		return false
	}
	defer probe.Rollback()
	return b.TokenType() == lexer.TokenIdent || b.TokenType() == lexer.TokenLParen
}

func (p *patternParser) PreParsePattern(b *tree.Builder) *tree.Marker {
	start := b.Mark()
	p.j.declarations.parseModifierList(b)
	if p.j.references.ParseTypeInfo(b, 0) == nil {
		start.Rollback()
		return nil
	}
	return start
}

func (p *patternParser) ParsePattern(b *tree.Builder) *tree.Marker {
	if p.atUnnamed(b) {
		unnamed := b.Mark()
		b.Advance()
		unnamed.Done(tree.KindUnnamedPattern)
		return unnamed
	}

	pattern := b.Mark()
	p.j.declarations.parseModifierList(b)
	if p.j.references.ParseTypeInfo(b, TypeVar) == nil {
		pattern.Rollback()
		return nil
	}

	if b.TokenType() != lexer.TokenLParen {
		if b.TokenType() == lexer.TokenIdent {
			p.parseVariable(b)
		} else {
			b.Error(msgExpectedIdentifier)
		}
		pattern.Done(tree.KindTypeTestPattern)
		return pattern
	}

	list := b.Mark()
	b.Advance()
	if !b.Expect(lexer.TokenRParen) {
		for {
			if p.ParsePattern(b) == nil {
				b.Error(msgExpectedPattern)
				if b.TokenType() != lexer.TokenComma {
					break
				}
			}
			if !b.Expect(lexer.TokenComma) {
				break
			}
		}
		b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	}
	list.Done(tree.KindDeconstructionList)
	if b.TokenType() == lexer.TokenIdent && b.TokenText() != "when" {
		p.parseVariable(b)
	}
	pattern.Done(tree.KindDeconstructionPattern)
	return pattern
}

func (p *patternParser) parseVariable(b *tree.Builder) {
	variable := b.Mark()
	b.Advance()
	variable.Done(tree.KindPatternVariable)
}

// atUnnamed reports whether the cursor is at a lone _ pattern.
func (p *patternParser) atUnnamed(b *tree.Builder) bool {
	if b.TokenType() != lexer.TokenIdent || b.TokenText() != "_" || !p.j.supports(FeatureUnnamedVariables) {
		return false
	}
	switch b.LookAhead(1) {
	case lexer.TokenComma, lexer.TokenRParen, lexer.TokenArrow, lexer.TokenColon:
		return true
	}
	return false
}
