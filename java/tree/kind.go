package tree

type NodeKind int

const (
	KindError NodeKind = iota

	// KindToken is a leaf wrapping a single non-trivia token.
	KindToken

	// Roots
	KindFile
	KindStatementList

	// Blocks and statements
	KindCodeBlock
	KindEmptyStmt
	KindBlockStmt
	KindExpressionStmt
	KindExpressionListStmt
	KindDeclarationStmt
	KindLabeledStmt
	KindIfStmt
	KindWhileStmt
	KindDoWhileStmt
	KindForStmt
	KindForeachStmt
	KindForeachPatternStmt
	KindSwitchStmt
	KindSwitchLabelStmt
	KindSwitchLabeledRule
	KindCaseLabelElementList
	KindDefaultCaseLabelElement
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindThrowStmt
	KindYieldStmt
	KindSynchronizedStmt
	KindTryStmt
	KindCatchSection
	KindAssertStmt
	KindResourceList
	KindResourceVariable
	KindResourceExpression

	// Declarations
	KindPackageStmt
	KindImportList
	KindImportStmt
	KindClass
	KindClassBody
	KindEnumConstant
	KindRecordHeader
	KindRecordComponent
	KindMethod
	KindField
	KindClassInitializer
	KindLocalVariable
	KindModifierList
	KindAnnotation
	KindAnnotationArgs
	KindNameValuePair
	KindParameterList
	KindParameter
	KindReceiverParameter
	KindTypeParameterList
	KindTypeParameter
	KindExtendsList
	KindImplementsList
	KindPermitsList
	KindThrowsList

	// Types
	KindType
	KindCodeReference
	KindTypeArgumentList

	// Expressions
	KindReferenceExpr
	KindLiteralExpr
	KindMethodCallExpr
	KindExpressionList
	KindAssignmentExpr
	KindBinaryExpr
	KindConditionalExpr
	KindPrefixExpr
	KindPostfixExpr
	KindTypeCastExpr
	KindParenthExpr
	KindInstanceOfExpr
	KindNewExpr
	KindAnonymousClass
	KindArrayAccessExpr
	KindArrayInitializerExpr
	KindLambdaExpr
	KindMethodRefExpr
	KindClassObjectAccessExpr
	KindThisExpr
	KindSuperExpr
	KindSwitchExpr
	KindTupleExpr
	KindTupleValue

	// Patterns
	KindTypeTestPattern
	KindDeconstructionPattern
	KindDeconstructionList
	KindPatternVariable
	KindUnnamedPattern
)

var nodeKindNames = map[NodeKind]string{
	KindError:                   "Error",
	KindToken:                   "Token",
	KindFile:                    "File",
	KindStatementList:           "StatementList",
	KindCodeBlock:               "CodeBlock",
	KindEmptyStmt:               "EmptyStmt",
	KindBlockStmt:               "BlockStmt",
	KindExpressionStmt:          "ExpressionStmt",
	KindExpressionListStmt:      "ExpressionListStmt",
	KindDeclarationStmt:         "DeclarationStmt",
	KindLabeledStmt:             "LabeledStmt",
	KindIfStmt:                  "IfStmt",
	KindWhileStmt:               "WhileStmt",
	KindDoWhileStmt:             "DoWhileStmt",
	KindForStmt:                 "ForStmt",
	KindForeachStmt:             "ForeachStmt",
	KindForeachPatternStmt:      "ForeachPatternStmt",
	KindSwitchStmt:              "SwitchStmt",
	KindSwitchLabelStmt:         "SwitchLabelStmt",
	KindSwitchLabeledRule:       "SwitchLabeledRule",
	KindCaseLabelElementList:    "CaseLabelElementList",
	KindDefaultCaseLabelElement: "DefaultCaseLabelElement",
	KindBreakStmt:               "BreakStmt",
	KindContinueStmt:            "ContinueStmt",
	KindReturnStmt:              "ReturnStmt",
	KindThrowStmt:               "ThrowStmt",
	KindYieldStmt:               "YieldStmt",
	KindSynchronizedStmt:        "SynchronizedStmt",
	KindTryStmt:                 "TryStmt",
	KindCatchSection:            "CatchSection",
	KindAssertStmt:              "AssertStmt",
	KindResourceList:            "ResourceList",
	KindResourceVariable:        "ResourceVariable",
	KindResourceExpression:      "ResourceExpression",
	KindPackageStmt:             "PackageStmt",
	KindImportList:              "ImportList",
	KindImportStmt:              "ImportStmt",
	KindClass:                   "Class",
	KindClassBody:               "ClassBody",
	KindEnumConstant:            "EnumConstant",
	KindRecordHeader:            "RecordHeader",
	KindRecordComponent:         "RecordComponent",
	KindMethod:                  "Method",
	KindField:                   "Field",
	KindClassInitializer:        "ClassInitializer",
	KindLocalVariable:           "LocalVariable",
	KindModifierList:            "ModifierList",
	KindAnnotation:              "Annotation",
	KindAnnotationArgs:          "AnnotationArgs",
	KindNameValuePair:           "NameValuePair",
	KindParameterList:           "ParameterList",
	KindParameter:               "Parameter",
	KindReceiverParameter:       "ReceiverParameter",
	KindTypeParameterList:       "TypeParameterList",
	KindTypeParameter:           "TypeParameter",
	KindExtendsList:             "ExtendsList",
	KindImplementsList:          "ImplementsList",
	KindPermitsList:             "PermitsList",
	KindThrowsList:              "ThrowsList",
	KindType:                    "Type",
	KindCodeReference:           "CodeReference",
	KindTypeArgumentList:        "TypeArgumentList",
	KindReferenceExpr:           "ReferenceExpr",
	KindLiteralExpr:             "LiteralExpr",
	KindMethodCallExpr:          "MethodCallExpr",
	KindExpressionList:          "ExpressionList",
	KindAssignmentExpr:          "AssignmentExpr",
	KindBinaryExpr:              "BinaryExpr",
	KindConditionalExpr:         "ConditionalExpr",
	KindPrefixExpr:              "PrefixExpr",
	KindPostfixExpr:             "PostfixExpr",
	KindTypeCastExpr:            "TypeCastExpr",
	KindParenthExpr:             "ParenthExpr",
	KindInstanceOfExpr:          "InstanceOfExpr",
	KindNewExpr:                 "NewExpr",
	KindAnonymousClass:          "AnonymousClass",
	KindArrayAccessExpr:         "ArrayAccessExpr",
	KindArrayInitializerExpr:    "ArrayInitializerExpr",
	KindLambdaExpr:              "LambdaExpr",
	KindMethodRefExpr:           "MethodRefExpr",
	KindClassObjectAccessExpr:   "ClassObjectAccessExpr",
	KindThisExpr:                "ThisExpr",
	KindSuperExpr:               "SuperExpr",
	KindSwitchExpr:              "SwitchExpr",
	KindTupleExpr:               "TupleExpr",
	KindTupleValue:              "TupleValue",
	KindTypeTestPattern:         "TypeTestPattern",
	KindDeconstructionPattern:   "DeconstructionPattern",
	KindDeconstructionList:      "DeconstructionList",
	KindPatternVariable:         "PatternVariable",
	KindUnnamedPattern:          "UnnamedPattern",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsStatement reports whether k is one of the statement node kinds.
func (k NodeKind) IsStatement() bool {
	return k >= KindEmptyStmt && k <= KindAssertStmt &&
		k != KindCaseLabelElementList && k != KindDefaultCaseLabelElement &&
		k != KindCatchSection
}
