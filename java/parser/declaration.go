package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const (
	msgExpectedAssign     = "'=' expected"
	msgExpectedMemberBody = "'{' or ';' expected"
)

var modifierKeywords = map[lexer.TokenKind]bool{
	lexer.TokenPublic:       true,
	lexer.TokenProtected:    true,
	lexer.TokenPrivate:      true,
	lexer.TokenStatic:       true,
	lexer.TokenAbstract:     true,
	lexer.TokenFinal:        true,
	lexer.TokenNative:       true,
	lexer.TokenSynchronized: true,
	lexer.TokenTransient:    true,
	lexer.TokenVolatile:     true,
	lexer.TokenStrictfp:     true,
	lexer.TokenDefault:      true,
}

type declarationParser struct {
	j *JavaParser
}

// Parse parses a declaration valid in ctx and returns nil with nothing
// consumed when none starts at the cursor. Local variables are only
// recognized in code blocks, where a type must be followed by a name.
func (d *declarationParser) Parse(b *tree.Builder, ctx DeclContext) *tree.Marker {
	decl := b.Mark()
	d.parseModifierList(b)

	if d.atClassKeyword(b) {
		d.parseClass(b, decl)
		return decl
	}

	switch ctx {
	case ContextClass, ContextAnnotationInterface:
		if d.parseMember(b, decl) {
			return decl
		}
	case ContextCodeBlock:
		info := d.j.references.ParseTypeInfo(b, TypeVar)
		if info != nil && b.TokenType() == lexer.TokenIdent {
			d.parseVariableDeclarators(b)
			d.j.Statements.semicolon(b)
			decl.Done(tree.KindLocalVariable)
			return decl
		}
	}

	decl.Rollback()
	return nil
}

func (d *declarationParser) atClassKeyword(b *tree.Builder) bool {
	switch b.TokenType() {
	case lexer.TokenClass, lexer.TokenInterface, lexer.TokenEnum:
		return true
	case lexer.TokenAt:
		return b.LookAhead(1) == lexer.TokenInterface
	case lexer.TokenIdent:
		return d.atRecordKeyword(b)
	}
	return false
}

func (d *declarationParser) atRecordKeyword(b *tree.Builder) bool {
	return b.TokenText() == "record" && d.j.supports(FeatureRecords) &&
		b.LookAhead(1) == lexer.TokenIdent &&
		(b.LookAhead(2) == lexer.TokenLParen || b.LookAhead(2) == lexer.TokenLT)
}

// parseModifierList always produces a node, empty when no modifiers are
// present.
func (d *declarationParser) parseModifierList(b *tree.Builder) *tree.Marker {
	modifiers := b.Mark()
	for {
		switch tokenType := b.TokenType(); {
		case tokenType == lexer.TokenDefault &&
			(b.LookAhead(1) == lexer.TokenColon || b.LookAhead(1) == lexer.TokenArrow):
			modifiers.Done(tree.KindModifierList)
			return modifiers
		case modifierKeywords[tokenType]:
			b.Advance()
		case tokenType == lexer.TokenAt && b.LookAhead(1) != lexer.TokenInterface:
			d.parseAnnotation(b)
		case tokenType == lexer.TokenIdent && d.atSealed(b):
			b.RemapCurrentToken(lexer.TokenSealed)
			b.Advance()
		case tokenType == lexer.TokenIdent && d.j.supports(FeatureSealedClasses) && isNonSealed(b):
			b.AdvanceN(3)
		default:
			modifiers.Done(tree.KindModifierList)
			return modifiers
		}
	}
}

// atSealed reports whether the identifier sealed at the cursor is used as
// a modifier rather than as a name.
func (d *declarationParser) atSealed(b *tree.Builder) bool {
	if b.TokenText() != "sealed" || !d.j.supports(FeatureSealedClasses) {
		return false
	}
	next := b.LookAhead(1)
	switch {
	case modifierKeywords[next], next == lexer.TokenClass, next == lexer.TokenInterface, next == lexer.TokenAt:
		return true
	case next == lexer.TokenIdent:
		text := b.LookAheadText(1)
		return text == "record" || text == "non" || text == "sealed"
	}
	return false
}

func (d *declarationParser) ParseAnnotations(b *tree.Builder) bool {
	found := false
	for b.TokenType() == lexer.TokenAt && b.LookAhead(1) != lexer.TokenInterface {
		d.parseAnnotation(b)
		found = true
	}
	return found
}

func (d *declarationParser) parseAnnotation(b *tree.Builder) {
	annotation := b.Mark()
	b.Advance()
	if b.TokenType() != lexer.TokenIdent {
		b.Error(msgExpectedIdentifier)
		annotation.Done(tree.KindAnnotation)
		return
	}
	d.j.references.parseCodeReference(b, false)

	if b.TokenType() == lexer.TokenLParen {
		args := b.Mark()
		b.Advance()
		if !b.Expect(lexer.TokenRParen) {
			for {
				pair := b.Mark()
				if b.TokenType() == lexer.TokenIdent && b.LookAhead(1) == lexer.TokenAssign {
					b.AdvanceN(2)
				}
				d.parseAnnotationValue(b)
				pair.Done(tree.KindNameValuePair)
				if !b.Expect(lexer.TokenComma) {
					break
				}
			}
			b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
		}
		args.Done(tree.KindAnnotationArgs)
	}
	annotation.Done(tree.KindAnnotation)
}

func (d *declarationParser) parseAnnotationValue(b *tree.Builder) {
	switch b.TokenType() {
	case lexer.TokenAt:
		d.parseAnnotation(b)
	case lexer.TokenLBrace:
		init := b.Mark()
		b.Advance()
		for b.TokenType() != lexer.TokenRBrace && !b.Eof() {
			d.parseAnnotationValue(b)
			if !b.Expect(lexer.TokenComma) {
				break
			}
		}
		b.ExpectOrError(lexer.TokenRBrace, msgExpectedRBrace)
		init.Done(tree.KindArrayInitializerExpr)
	default:
		if d.j.expressions.Parse(b) == nil {
			b.Error(msgExpectedExpression)
		}
	}
}

// parseClass parses a class, interface, enum, record or annotation
// interface after its modifiers and closes decl.
func (d *declarationParser) parseClass(b *tree.Builder, decl *tree.Marker) {
	enum, record, annotation := false, false, false
	switch b.TokenType() {
	case lexer.TokenAt:
		annotation = true
		b.AdvanceN(2)
	case lexer.TokenEnum:
		enum = true
		b.Advance()
	case lexer.TokenIdent:
		record = true
		b.RemapCurrentToken(lexer.TokenRecord)
		b.Advance()
	default:
		b.Advance()
	}

	if !b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier) {
		decl.Done(tree.KindClass)
		return
	}
	if b.TokenType() == lexer.TokenLT {
		d.parseTypeParameters(b)
	}
	if record && b.TokenType() == lexer.TokenLParen {
		d.parseRecordHeader(b)
	}

	d.parseReferenceList(b, lexer.TokenExtends, tree.KindExtendsList)
	d.parseReferenceList(b, lexer.TokenImplements, tree.KindImplementsList)
	if b.TokenType() == lexer.TokenIdent && b.TokenText() == "permits" && d.j.supports(FeatureSealedClasses) {
		b.RemapCurrentToken(lexer.TokenPermits)
		d.parseReferenceList(b, lexer.TokenPermits, tree.KindPermitsList)
	}

	if b.TokenType() == lexer.TokenLBrace {
		ctx := ContextClass
		if annotation {
			ctx = ContextAnnotationInterface
		}
		d.parseBody(b, enum, ctx)
	} else {
		b.Error(msgExpectedLBrace)
	}
	decl.Done(tree.KindClass)
}

func (d *declarationParser) parseReferenceList(b *tree.Builder, keyword lexer.TokenKind, kind tree.NodeKind) {
	if b.TokenType() != keyword {
		return
	}
	list := b.Mark()
	b.Advance()
	for {
		if d.j.references.ParseTypeInfo(b, 0) == nil {
			b.Error(msgExpectedType)
			break
		}
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	list.Done(kind)
}

func (d *declarationParser) parseTypeParameters(b *tree.Builder) {
	list := b.Mark()
	b.Advance()
	for {
		param := b.Mark()
		d.ParseAnnotations(b)
		if !b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier) {
			param.Done(tree.KindTypeParameter)
			break
		}
		if b.Expect(lexer.TokenExtends) && d.j.references.ParseTypeInfo(b, TypeConjunctions) == nil {
			b.Error(msgExpectedType)
		}
		param.Done(tree.KindTypeParameter)
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	b.ExpectOrError(lexer.TokenGT, msgExpectedGT)
	list.Done(tree.KindTypeParameterList)
}

func (d *declarationParser) parseRecordHeader(b *tree.Builder) {
	header := b.Mark()
	b.Advance()
	if !b.Expect(lexer.TokenRParen) {
		for {
			component := b.Mark()
			d.ParseAnnotations(b)
			if d.j.references.ParseTypeInfo(b, TypeEllipsis) == nil {
				b.Error(msgExpectedType)
			} else {
				b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier)
			}
			component.Done(tree.KindRecordComponent)
			if !b.Expect(lexer.TokenComma) {
				break
			}
		}
		b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	}
	header.Done(tree.KindRecordHeader)
}

// parseClassBody parses { members } for anonymous classes.
func (d *declarationParser) parseClassBody(b *tree.Builder, enum bool) {
	d.parseBody(b, enum, ContextClass)
}

func (d *declarationParser) parseBody(b *tree.Builder, enum bool, ctx DeclContext) {
	body := b.Mark()
	b.Advance()

	if enum {
		d.parseEnumConstants(b)
	}

	for b.TokenType() != lexer.TokenRBrace && !b.Eof() {
		switch b.TokenType() {
		case lexer.TokenSemicolon:
			b.Advance()
			continue
		case lexer.TokenFragment:
			d.j.handleRegion(b)
			continue
		}
		if d.Parse(b, ctx) == nil {
			bad := b.Mark()
			b.Advance()
			bad.Error(msgUnexpectedToken)
		}
	}

	greedy := !b.ExpectOrError(lexer.TokenRBrace, msgExpectedRBrace)
	body.Done(tree.KindClassBody)
	if greedy {
		body.SetGreedyRight()
	}
}

func (d *declarationParser) parseEnumConstants(b *tree.Builder) {
	for b.TokenType() == lexer.TokenIdent || b.TokenType() == lexer.TokenAt {
		constant := b.Mark()
		d.ParseAnnotations(b)
		if b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier) {
			if b.TokenType() == lexer.TokenLParen {
				d.j.expressions.parseArguments(b)
			}
			if b.TokenType() == lexer.TokenLBrace {
				anonymous := b.Mark()
				d.parseClassBody(b, false)
				anonymous.Done(tree.KindAnonymousClass)
			}
		}
		constant.Done(tree.KindEnumConstant)
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	b.Expect(lexer.TokenSemicolon)
}

// parseMember parses a field, method, constructor or initializer after
// the modifiers and reports whether one was found.
func (d *declarationParser) parseMember(b *tree.Builder, decl *tree.Marker) bool {
	if b.TokenType() == lexer.TokenLBrace {
		d.j.Statements.ParseCodeBlock(b, false)
		decl.Done(tree.KindClassInitializer)
		return true
	}

	if b.TokenType() == lexer.TokenLT {
		d.parseTypeParameters(b)
	}

	if b.TokenType() == lexer.TokenIdent {
		switch b.LookAhead(1) {
		case lexer.TokenLParen:
			d.parseMethodRest(b, decl)
			return true
		case lexer.TokenLBrace:
			// compact record constructor
			b.Advance()
			d.j.Statements.ParseCodeBlock(b, false)
			decl.Done(tree.KindMethod)
			return true
		}
	}

	if d.j.references.ParseTypeInfo(b, 0) == nil {
		return false
	}
	if b.TokenType() != lexer.TokenIdent {
		b.Error(msgExpectedIdentifier)
		decl.Done(tree.KindField)
		return true
	}
	if b.LookAhead(1) == lexer.TokenLParen {
		d.parseMethodRest(b, decl)
		return true
	}

	d.parseVariableDeclarators(b)
	d.j.Statements.semicolon(b)
	decl.Done(tree.KindField)
	return true
}

func (d *declarationParser) parseMethodRest(b *tree.Builder, decl *tree.Marker) {
	b.Advance()
	d.parseParameterList(b)
	for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
		b.AdvanceN(2)
	}
	d.parseReferenceList(b, lexer.TokenThrows, tree.KindThrowsList)
	if b.Expect(lexer.TokenDefault) {
		d.parseAnnotationValue(b)
	}

	switch {
	case b.TokenType() == lexer.TokenLBrace:
		d.j.Statements.ParseCodeBlock(b, false)
	case !b.Expect(lexer.TokenSemicolon):
		b.Error(msgExpectedMemberBody)
	}
	decl.Done(tree.KindMethod)
}

func (d *declarationParser) parseParameterList(b *tree.Builder) {
	list := b.Mark()
	b.Advance()
	if !b.Expect(lexer.TokenRParen) {
		for {
			if d.ParseParameter(b, ParamOptions{Ellipsis: true}) == nil {
				b.Error(msgExpectedParameter)
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
	list.Done(tree.KindParameterList)
}

// ParseParameter parses [modifiers] Type name. A type without a name is
// rejected, except in catch clauses where the name is reported missing.
func (d *declarationParser) ParseParameter(b *tree.Builder, opts ParamOptions) *tree.Marker {
	param := b.Mark()
	d.parseModifierList(b)

	var flags TypeFlags
	if opts.Ellipsis {
		flags |= TypeEllipsis
	}
	if opts.Disjunction {
		flags |= TypeDisjunctions
	}
	if opts.VarType {
		flags |= TypeVar
	}
	if d.j.references.ParseTypeInfo(b, flags) == nil {
		param.Rollback()
		return nil
	}

	switch {
	case b.TokenType() == lexer.TokenIdent:
		b.Advance()
		for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
			b.AdvanceN(2)
		}
		param.Done(tree.KindParameter)
	case b.TokenType() == lexer.TokenThis:
		b.Advance()
		param.Done(tree.KindReceiverParameter)
	case opts.Disjunction:
		b.Error(msgExpectedIdentifier)
		param.Done(tree.KindParameter)
	default:
		param.Rollback()
		return nil
	}
	return param
}

func (d *declarationParser) ParseResourceList(b *tree.Builder) *tree.Marker {
	list := b.Mark()
	b.Advance()
	for b.TokenType() != lexer.TokenRParen && !b.Eof() {
		if d.parseResource(b) == nil {
			b.Error(msgExpectedExpression)
			break
		}
		if !b.Expect(lexer.TokenSemicolon) {
			break
		}
	}
	b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	list.Done(tree.KindResourceList)
	return list
}

func (d *declarationParser) parseResource(b *tree.Builder) *tree.Marker {
	resource := b.Mark()
	d.parseModifierList(b)
	if d.j.references.ParseTypeInfo(b, TypeVar) != nil && b.TokenType() == lexer.TokenIdent {
		b.Advance()
		if b.ExpectOrError(lexer.TokenAssign, msgExpectedAssign) && d.j.expressions.Parse(b) == nil {
			b.Error(msgExpectedExpression)
		}
		resource.Done(tree.KindResourceVariable)
		return resource
	}
	resource.Rollback()

	expr := d.j.expressions.Parse(b)
	if expr == nil {
		return nil
	}
	resource = expr.Precede()
	resource.Done(tree.KindResourceExpression)
	return resource
}

// parseVariableDeclarators parses name [= init], name [= init] ... with
// the cursor on the first name.
func (d *declarationParser) parseVariableDeclarators(b *tree.Builder) {
	for {
		b.Advance()
		for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
			b.AdvanceN(2)
		}
		if b.Expect(lexer.TokenAssign) {
			d.parseVariableInitializer(b)
		}
		if b.TokenType() != lexer.TokenComma || b.LookAhead(1) != lexer.TokenIdent {
			return
		}
		b.Advance()
	}
}

func (d *declarationParser) parseVariableInitializer(b *tree.Builder) {
	if b.TokenType() == lexer.TokenLBrace {
		d.j.expressions.parseArrayInitializer(b)
		return
	}
	if d.j.expressions.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	}
}
