package parser

import (
	"github.com/dhamidi/xjava/java/lexer"
	"github.com/dhamidi/xjava/java/tree"
)

const (
	msgExpectedRBracket       = "']' expected"
	msgExpectedLBracket       = "'[' expected"
	msgExpectedArgsOrDims     = "'(' or '[' expected"
	msgExpectedArrow          = "'->' expected"
	msgExpectedLambdaBody     = "Lambda body expected"
	msgExpectedArrayDimension = "Array dimension expected"
)

var assignmentOperators = map[lexer.TokenKind]bool{
	lexer.TokenAssign:        true,
	lexer.TokenPlusAssign:    true,
	lexer.TokenMinusAssign:   true,
	lexer.TokenStarAssign:    true,
	lexer.TokenSlashAssign:   true,
	lexer.TokenPercentAssign: true,
	lexer.TokenAndAssign:     true,
	lexer.TokenOrAssign:      true,
	lexer.TokenXorAssign:     true,
	lexer.TokenShlAssign:     true,
	lexer.TokenShrAssign:     true,
	lexer.TokenUShrAssign:    true,
}

// Binary operator levels from loosest to tightest. Shift operators are
// matched separately because >> and >>> arrive as adjacent > tokens.
const (
	levelOr = iota
	levelAnd
	levelBitOr
	levelBitXor
	levelBitAnd
	levelEquality
	levelRelational
	levelShift
	levelAdditive
	levelMultiplicative
	levelCount
)

var binaryOperators = [levelCount][]lexer.TokenKind{
	levelOr:             {lexer.TokenOr},
	levelAnd:            {lexer.TokenAnd},
	levelBitOr:          {lexer.TokenBitOr},
	levelBitXor:         {lexer.TokenBitXor},
	levelBitAnd:         {lexer.TokenBitAnd},
	levelEquality:       {lexer.TokenEQ, lexer.TokenNE},
	levelRelational:     {lexer.TokenLT, lexer.TokenLE, lexer.TokenGT, lexer.TokenGE},
	levelShift:          {lexer.TokenShl},
	levelAdditive:       {lexer.TokenPlus, lexer.TokenMinus},
	levelMultiplicative: {lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent},
}

// Tokens that may start the operand of a cast to a reference type. Other
// tokens after (Name) mean a parenthesized expression.
var castOperandStart = map[lexer.TokenKind]bool{
	lexer.TokenIdent:         true,
	lexer.TokenThis:          true,
	lexer.TokenSuper:         true,
	lexer.TokenNew:           true,
	lexer.TokenSwitch:        true,
	lexer.TokenLParen:        true,
	lexer.TokenNot:           true,
	lexer.TokenBitNot:        true,
	lexer.TokenIntLiteral:    true,
	lexer.TokenFloatLiteral:  true,
	lexer.TokenCharLiteral:   true,
	lexer.TokenStringLiteral: true,
	lexer.TokenTextBlock:     true,
	lexer.TokenTrue:          true,
	lexer.TokenFalse:         true,
	lexer.TokenNull:          true,
}

type expressionParser struct {
	j *JavaParser
}

func (e *expressionParser) Parse(b *tree.Builder) *tree.Marker {
	return e.parseTop(b, false)
}

func (e *expressionParser) ParseAssignmentForbiddingLambda(b *tree.Builder) *tree.Marker {
	return e.parseTop(b, true)
}

func (e *expressionParser) parseTop(b *tree.Builder, forbidLambda bool) *tree.Marker {
	start := b.Mark()
	expr := e.parseAssignment(b, forbidLambda)
	if expr == nil {
		start.Rollback()
		return nil
	}
	start.Drop()
	return expr
}

// ParseTupleOrExpr parses a return value. With tuples enabled it also
// accepts a bare comma list and labeled values.
func (e *expressionParser) ParseTupleOrExpr(b *tree.Builder) *tree.Marker {
	if !e.j.config.Extensions.Tuples {
		return e.Parse(b)
	}

	tuple := b.Mark()
	if isTupleLabel(b) {
		e.parseTupleValue(b)
	} else {
		first := e.Parse(b)
		if first == nil {
			tuple.Rollback()
			return nil
		}
		if b.TokenType() != lexer.TokenComma {
			tuple.Drop()
			return first
		}
		value := first.Precede()
		value.Done(tree.KindTupleValue)
	}

	for b.Expect(lexer.TokenComma) {
		e.parseTupleValue(b)
	}
	tuple.Done(tree.KindTupleExpr)
	return tuple
}

func isTupleLabel(b *tree.Builder) bool {
	return b.TokenType() == lexer.TokenIdent && b.LookAhead(1) == lexer.TokenColon
}

func (e *expressionParser) parseTupleValue(b *tree.Builder) {
	value := b.Mark()
	if isTupleLabel(b) {
		b.AdvanceN(2)
	}
	if e.Parse(b) == nil {
		b.Error(msgExpectedExpression)
	}
	value.Done(tree.KindTupleValue)
}

func (e *expressionParser) parseAssignment(b *tree.Builder, forbidLambda bool) *tree.Marker {
	if !forbidLambda {
		if lambda := e.parseLambda(b); lambda != nil {
			return lambda
		}
	}

	left := e.parseConditional(b, forbidLambda)
	if left == nil || !assignmentOperators[b.TokenType()] {
		return left
	}

	assignment := left.Precede()
	b.Advance()
	if e.parseAssignment(b, forbidLambda) == nil {
		b.Error(msgExpectedExpression)
	}
	assignment.Done(tree.KindAssignmentExpr)
	return assignment
}

func (e *expressionParser) parseConditional(b *tree.Builder, forbidLambda bool) *tree.Marker {
	condition := e.parseBinary(b, levelOr)
	if condition == nil || b.TokenType() != lexer.TokenQuestion {
		return condition
	}

	conditional := condition.Precede()
	b.Advance()
	if e.parseAssignment(b, false) == nil {
		b.Error(msgExpectedExpression)
	} else if b.ExpectOrError(lexer.TokenColon, msgExpectedColon) {
		var alternative *tree.Marker
		if !forbidLambda {
			alternative = e.parseLambda(b)
		}
		if alternative == nil {
			alternative = e.parseConditional(b, forbidLambda)
		}
		if alternative == nil {
			b.Error(msgExpectedExpression)
		}
	}
	conditional.Done(tree.KindConditionalExpr)
	return conditional
}

func (e *expressionParser) parseBinary(b *tree.Builder, level int) *tree.Marker {
	if level == levelCount {
		return e.parseUnary(b)
	}

	left := e.parseBinary(b, level+1)
	if left == nil {
		return nil
	}

	for {
		if level == levelRelational && b.TokenType() == lexer.TokenInstanceof {
			left = e.parseInstanceOf(b, left)
			continue
		}
		width := binaryOperatorWidth(b, level)
		if width == 0 {
			return left
		}
		binary := left.Precede()
		b.AdvanceN(width)
		if e.parseBinary(b, level+1) == nil {
			b.Error(msgExpectedExpression)
		}
		binary.Done(tree.KindBinaryExpr)
		left = binary
	}
}

// binaryOperatorWidth returns the number of tokens forming a binary
// operator of the given level at the cursor, or 0.
func binaryOperatorWidth(b *tree.Builder, level int) int {
	tokenType := b.TokenType()
	if tokenType == lexer.TokenGT {
		shift := 1
		for shift < 3 && b.LookAhead(shift) == lexer.TokenGT && b.Adjacent(shift) {
			shift++
		}
		switch {
		case level == levelShift && shift > 1:
			return shift
		case level == levelRelational && shift == 1:
			return 1
		}
		return 0
	}
	for _, op := range binaryOperators[level] {
		if op == tokenType {
			return 1
		}
	}
	return 0
}

func (e *expressionParser) parseInstanceOf(b *tree.Builder, left *tree.Marker) *tree.Marker {
	instanceOf := left.Precede()
	b.Advance()
	if e.j.patterns.IsPattern(b) {
		e.j.patterns.ParsePattern(b)
	} else if e.j.references.ParseTypeInfo(b, 0) == nil {
		b.Error(msgExpectedType)
	}
	instanceOf.Done(tree.KindInstanceOfExpr)
	return instanceOf
}

func (e *expressionParser) parseUnary(b *tree.Builder) *tree.Marker {
	switch b.TokenType() {
	case lexer.TokenIncrement, lexer.TokenDecrement,
		lexer.TokenPlus, lexer.TokenMinus, lexer.TokenNot, lexer.TokenBitNot:
		prefix := b.Mark()
		b.Advance()
		if e.parseUnary(b) == nil {
			b.Error(msgExpectedExpression)
		}
		prefix.Done(tree.KindPrefixExpr)
		return prefix
	case lexer.TokenLParen:
		if cast := e.parseCast(b); cast != nil {
			return cast
		}
	}
	return e.parsePostfix(b)
}

func (e *expressionParser) parseCast(b *tree.Builder) *tree.Marker {
	cast := b.Mark()
	b.Advance()

	info := e.j.references.ParseTypeInfo(b, TypeConjunctions)
	if info == nil || b.TokenType() != lexer.TokenRParen {
		cast.Rollback()
		return nil
	}
	b.Advance()

	if !info.Primitive || info.Array {
		next := b.TokenType()
		if next == lexer.TokenIncrement || next == lexer.TokenDecrement {
			after := b.LookAhead(1)
			if after != lexer.TokenIdent && after != lexer.TokenLParen && after != lexer.TokenThis {
				cast.Rollback()
				return nil
			}
		} else if !castOperandStart[next] {
			cast.Rollback()
			return nil
		}
	}

	operand := e.parseLambda(b)
	if operand == nil {
		operand = e.parseUnary(b)
	}
	if operand == nil {
		b.Error(msgExpectedExpression)
	}
	cast.Done(tree.KindTypeCastExpr)
	return cast
}

func (e *expressionParser) parsePostfix(b *tree.Builder) *tree.Marker {
	expr := e.parsePrimary(b)
	if expr == nil {
		return nil
	}
	expr = e.parseSuffixes(b, expr)

	for b.TokenType() == lexer.TokenIncrement || b.TokenType() == lexer.TokenDecrement {
		postfix := expr.Precede()
		b.Advance()
		postfix.Done(tree.KindPostfixExpr)
		expr = postfix
	}
	return expr
}

func (e *expressionParser) parsePrimary(b *tree.Builder) *tree.Marker {
	switch tokenType := b.TokenType(); {
	case tokenType.IsLiteral():
		literal := b.Mark()
		b.Advance()
		literal.Done(tree.KindLiteralExpr)
		return literal
	case tokenType == lexer.TokenThis:
		return e.parseKeywordExpr(b, tree.KindThisExpr)
	case tokenType == lexer.TokenSuper:
		return e.parseKeywordExpr(b, tree.KindSuperExpr)
	case tokenType == lexer.TokenIdent:
		ref := b.Mark()
		b.Advance()
		ref.Done(tree.KindReferenceExpr)
		return e.parseCallArguments(b, ref)
	case tokenType == lexer.TokenLParen:
		return e.parseParenthesized(b)
	case tokenType == lexer.TokenNew:
		newExpr := b.Mark()
		e.parseNew(b, newExpr)
		return newExpr
	case tokenType == lexer.TokenSwitch:
		return e.parseSwitch(b)
	case tokenType.IsPrimitive() || tokenType == lexer.TokenVoid:
		return e.parsePrimitiveAccess(b)
	}
	return nil
}

// parseKeywordExpr parses this or super, including the explicit
// constructor calls this(...) and super(...).
func (e *expressionParser) parseKeywordExpr(b *tree.Builder, kind tree.NodeKind) *tree.Marker {
	expr := b.Mark()
	b.Advance()
	expr.Done(kind)
	return e.parseCallArguments(b, expr)
}

func (e *expressionParser) parseCallArguments(b *tree.Builder, callee *tree.Marker) *tree.Marker {
	if b.TokenType() != lexer.TokenLParen {
		return callee
	}
	call := callee.Precede()
	e.parseArguments(b)
	call.Done(tree.KindMethodCallExpr)
	return call
}

func (e *expressionParser) parseArguments(b *tree.Builder) {
	list := b.Mark()
	b.Advance()
	if !b.Expect(lexer.TokenRParen) {
		for {
			if e.Parse(b) == nil {
				b.Error(msgExpectedExpression)
			}
			if !b.Expect(lexer.TokenComma) {
				break
			}
		}
		b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	}
	list.Done(tree.KindExpressionList)
}

func (e *expressionParser) parseSuffixes(b *tree.Builder, expr *tree.Marker) *tree.Marker {
	for {
		switch b.TokenType() {
		case lexer.TokenDot:
			var complete bool
			expr, complete = e.parseDotSuffix(b, expr)
			if !complete {
				return expr
			}
		case lexer.TokenLBracket:
			if b.LookAhead(1) == lexer.TokenRBracket {
				access := e.parseArrayTypeAccess(b, expr)
				if access == nil {
					return expr
				}
				expr = access
				continue
			}
			access := expr.Precede()
			b.Advance()
			if e.Parse(b) == nil {
				b.Error(msgExpectedExpression)
			}
			b.ExpectOrError(lexer.TokenRBracket, msgExpectedRBracket)
			access.Done(tree.KindArrayAccessExpr)
			expr = access
		case lexer.TokenColonColon:
			ref := expr.Precede()
			e.parseMethodRefTail(b)
			ref.Done(tree.KindMethodRefExpr)
			expr = ref
		case lexer.TokenLT:
			if expr.Kind() != tree.KindReferenceExpr {
				return expr
			}
			special := e.parseGenericTypeAccess(b, expr)
			if special == nil {
				return expr
			}
			expr = special
		default:
			return expr
		}
	}
}

// parseDotSuffix parses what follows a '.' after expr. It reports false
// when no member name followed the dot.
func (e *expressionParser) parseDotSuffix(b *tree.Builder, expr *tree.Marker) (*tree.Marker, bool) {
	qualified := expr.Precede()
	b.Advance()

	switch b.TokenType() {
	case lexer.TokenIdent:
		b.Advance()
		qualified.Done(tree.KindReferenceExpr)
		return e.parseCallArguments(b, qualified), true
	case lexer.TokenLT:
		e.j.references.parseTypeArguments(b, false)
		ok := b.ExpectOrError(lexer.TokenIdent, msgExpectedIdentifier)
		qualified.Done(tree.KindReferenceExpr)
		if !ok {
			return qualified, false
		}
		return e.parseCallArguments(b, qualified), true
	case lexer.TokenClass:
		b.Advance()
		qualified.Done(tree.KindClassObjectAccessExpr)
	case lexer.TokenThis:
		b.Advance()
		qualified.Done(tree.KindThisExpr)
	case lexer.TokenSuper:
		b.Advance()
		qualified.Done(tree.KindSuperExpr)
		return e.parseCallArguments(b, qualified), true
	case lexer.TokenNew:
		e.parseNew(b, qualified)
	default:
		b.Error(msgExpectedIdentifier)
		qualified.Done(tree.KindReferenceExpr)
		return qualified, false
	}
	return qualified, true
}

// parseArrayTypeAccess parses Name[].class and Name[]::new. It returns nil
// with nothing consumed for any other use of [].
func (e *expressionParser) parseArrayTypeAccess(b *tree.Builder, expr *tree.Marker) *tree.Marker {
	probe := b.Mark()
	for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
		b.AdvanceN(2)
	}
	switch {
	case b.TokenType() == lexer.TokenDot && b.LookAhead(1) == lexer.TokenClass:
		probe.Drop()
		access := expr.Precede()
		b.AdvanceN(2)
		access.Done(tree.KindClassObjectAccessExpr)
		return access
	case b.TokenType() == lexer.TokenColonColon:
		probe.Drop()
		ref := expr.Precede()
		e.parseMethodRefTail(b)
		ref.Done(tree.KindMethodRefExpr)
		return ref
	}
	probe.Rollback()
	return nil
}

// parseGenericTypeAccess parses Foo<Bar>::new, Foo<Bar>[]::new and
// Foo<Bar>.class after a reference expression.
func (e *expressionParser) parseGenericTypeAccess(b *tree.Builder, expr *tree.Marker) *tree.Marker {
	probe := b.Mark()
	if !e.j.references.parseTypeArguments(b, false) {
		probe.Rollback()
		return nil
	}
	for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
		b.AdvanceN(2)
	}
	switch {
	case b.TokenType() == lexer.TokenColonColon:
		probe.Drop()
		ref := expr.Precede()
		e.parseMethodRefTail(b)
		ref.Done(tree.KindMethodRefExpr)
		return ref
	case b.TokenType() == lexer.TokenDot && b.LookAhead(1) == lexer.TokenClass:
		probe.Drop()
		access := expr.Precede()
		b.AdvanceN(2)
		access.Done(tree.KindClassObjectAccessExpr)
		return access
	}
	probe.Rollback()
	return nil
}

func (e *expressionParser) parseMethodRefTail(b *tree.Builder) {
	b.Advance()
	e.j.references.parseTypeArguments(b, false)
	if !b.Expect(lexer.TokenIdent) && !b.Expect(lexer.TokenNew) {
		b.Error(msgExpectedIdentifier)
	}
}

func (e *expressionParser) parsePrimitiveAccess(b *tree.Builder) *tree.Marker {
	typ := b.Mark()
	b.Advance()
	for b.TokenType() == lexer.TokenLBracket && b.LookAhead(1) == lexer.TokenRBracket {
		b.AdvanceN(2)
	}
	typ.Done(tree.KindType)

	switch {
	case b.TokenType() == lexer.TokenDot && b.LookAhead(1) == lexer.TokenClass:
		access := typ.Precede()
		b.AdvanceN(2)
		access.Done(tree.KindClassObjectAccessExpr)
		return access
	case b.TokenType() == lexer.TokenColonColon:
		ref := typ.Precede()
		e.parseMethodRefTail(b)
		ref.Done(tree.KindMethodRefExpr)
		return ref
	}
	typ.Rollback()
	return nil
}

// parseParenthesized parses (expr) and, with tuples enabled, (a, b) and
// (label: a, ...).
func (e *expressionParser) parseParenthesized(b *tree.Builder) *tree.Marker {
	expr := b.Mark()
	b.Advance()

	tuples := e.j.config.Extensions.Tuples
	if tuples && isTupleLabel(b) {
		e.parseTupleValue(b)
		for b.Expect(lexer.TokenComma) {
			e.parseTupleValue(b)
		}
		b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
		expr.Done(tree.KindTupleExpr)
		return expr
	}

	first := e.Parse(b)
	if first == nil {
		b.Error(msgExpectedExpression)
		b.Expect(lexer.TokenRParen)
		expr.Done(tree.KindParenthExpr)
		return expr
	}

	if tuples && b.TokenType() == lexer.TokenComma {
		value := first.Precede()
		value.Done(tree.KindTupleValue)
		for b.Expect(lexer.TokenComma) {
			e.parseTupleValue(b)
		}
		b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
		expr.Done(tree.KindTupleExpr)
		return expr
	}

	b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	expr.Done(tree.KindParenthExpr)
	return expr
}

// parseNew parses a class instance or array creation into newExpr, which
// is open and may already hold the qualifier of outer.new Inner().
func (e *expressionParser) parseNew(b *tree.Builder, newExpr *tree.Marker) {
	b.Advance()
	e.j.references.parseTypeArguments(b, false)
	e.j.declarations.ParseAnnotations(b)

	switch tokenType := b.TokenType(); {
	case tokenType.IsPrimitive():
		typ := b.Mark()
		b.Advance()
		typ.Done(tree.KindType)
		if b.TokenType() != lexer.TokenLBracket {
			b.Error(msgExpectedLBracket)
			newExpr.Done(tree.KindNewExpr)
			return
		}
	case tokenType == lexer.TokenIdent:
		typ := b.Mark()
		e.j.references.parseCodeReference(b, true)
		typ.Done(tree.KindType)
	default:
		b.Error(msgExpectedIdentifier)
		newExpr.Done(tree.KindNewExpr)
		return
	}

	switch b.TokenType() {
	case lexer.TokenLBracket:
		e.parseArrayDimensions(b)
		if b.TokenType() == lexer.TokenLBrace {
			e.parseArrayInitializer(b)
		}
	case lexer.TokenLParen:
		e.parseArguments(b)
		if b.TokenType() == lexer.TokenLBrace {
			anonymous := b.Mark()
			e.j.declarations.parseClassBody(b, false)
			anonymous.Done(tree.KindAnonymousClass)
		}
	default:
		b.Error(msgExpectedArgsOrDims)
	}
	newExpr.Done(tree.KindNewExpr)
}

func (e *expressionParser) parseArrayDimensions(b *tree.Builder) {
	sized := true
	for b.TokenType() == lexer.TokenLBracket {
		b.Advance()
		if b.TokenType() == lexer.TokenRBracket {
			sized = false
		} else if !sized {
			b.Error(msgExpectedRBracket)
		} else if e.Parse(b) == nil {
			b.Error(msgExpectedArrayDimension)
		}
		b.ExpectOrError(lexer.TokenRBracket, msgExpectedRBracket)
	}
}

func (e *expressionParser) parseArrayInitializer(b *tree.Builder) *tree.Marker {
	init := b.Mark()
	b.Advance()
	for b.TokenType() != lexer.TokenRBrace && !b.Eof() {
		if b.TokenType() == lexer.TokenLBrace {
			e.parseArrayInitializer(b)
		} else if e.Parse(b) == nil {
			b.Error(msgExpectedExpression)
			break
		}
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	b.ExpectOrError(lexer.TokenRBrace, msgExpectedRBrace)
	init.Done(tree.KindArrayInitializerExpr)
	return init
}

func (e *expressionParser) parseSwitch(b *tree.Builder) *tree.Marker {
	expr := b.Mark()
	b.Advance()
	if e.j.Statements.parseExprInParenth(b) {
		if e.j.Statements.ParseCodeBlockDeep(b, false) == nil {
			b.Error(msgExpectedLBrace)
		}
	}
	expr.Done(tree.KindSwitchExpr)
	return expr
}

// parseLambda parses a lambda expression when one starts at the cursor
// and returns nil otherwise.
func (e *expressionParser) parseLambda(b *tree.Builder) *tree.Marker {
	lambda := b.Mark()
	switch {
	case b.TokenType() == lexer.TokenIdent && b.LookAhead(1) == lexer.TokenArrow:
		params := b.Mark()
		param := b.Mark()
		b.Advance()
		param.Done(tree.KindParameter)
		params.Done(tree.KindParameterList)
	case b.TokenType() == lexer.TokenLParen && isLambdaParameterList(b):
		e.parseLambdaParameters(b)
	default:
		lambda.Rollback()
		return nil
	}

	if b.ExpectOrError(lexer.TokenArrow, msgExpectedArrow) {
		if b.TokenType() == lexer.TokenLBrace {
			e.j.Statements.ParseCodeBlock(b, true)
		} else if e.Parse(b) == nil {
			b.Error(msgExpectedLambdaBody)
		}
	}
	lambda.Done(tree.KindLambdaExpr)
	return lambda
}

// isLambdaParameterList reports whether the parenthesized group at the
// cursor is followed by ->.
func isLambdaParameterList(b *tree.Builder) bool {
	depth := 0
	for i := 0; ; i++ {
		switch b.LookAhead(i) {
		case lexer.TokenEOF:
			return false
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				return b.LookAhead(i+1) == lexer.TokenArrow
			}
		}
	}
}

func (e *expressionParser) parseLambdaParameters(b *tree.Builder) {
	params := b.Mark()
	b.Advance()
	for b.TokenType() != lexer.TokenRParen && !b.Eof() {
		if b.TokenType() == lexer.TokenIdent &&
			(b.LookAhead(1) == lexer.TokenComma || b.LookAhead(1) == lexer.TokenRParen) {
			param := b.Mark()
			b.Advance()
			param.Done(tree.KindParameter)
		} else if e.j.declarations.ParseParameter(b, ParamOptions{Ellipsis: true, VarType: true}) == nil {
			bad := b.Mark()
			for b.TokenType() != lexer.TokenComma && b.TokenType() != lexer.TokenRParen && !b.Eof() {
				b.Advance()
			}
			bad.Error(msgExpectedParameter)
		}
		if !b.Expect(lexer.TokenComma) {
			break
		}
	}
	b.ExpectOrError(lexer.TokenRParen, msgExpectedRParen)
	params.Done(tree.KindParameterList)
}
