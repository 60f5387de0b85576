package sema

import (
	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
)

// ActOnVar determines whether an expression denotes a valid variable
// reference for a variable-list clause. Sub-array and subscript layers
// are fine as long as the base is a variable, data member, or 'this';
// the original expression is returned on success so the subscript and
// section information is preserved for codegen. Dependent references
// are accepted optimistically and re-validated after instantiation.
func (c *Checker) ActOnVar(varExpr ast.Expr) (ast.Expr, error) {
	cur := ast.IgnoreParenImpCasts(varExpr)

	for {
		if sub, ok := cur.(*ast.Subscript); ok {
			cur = ast.IgnoreParenImpCasts(sub.Base)

			continue
		}

		if sec, ok := cur.(*ast.SectionExpr); ok {
			cur = ast.IgnoreParenImpCasts(sec.Base)

			continue
		}

		break
	}

	switch base := cur.(type) {
	case *ast.DeclRef:
		switch base.Decl.(type) {
		case *ast.VarDecl, *ast.TemplateParamDecl:
			return varExpr, nil
		}

	case *ast.Member:
		if _, ok := base.Member.(*ast.FieldDecl); ok {
			return varExpr, nil
		}

	case *ast.This:
		return varExpr, nil

	case *ast.DependentRef:
		// Nothing can be checked until instantiation resolves it.
		return varExpr, nil

	case *ast.Recovery:
		// Already diagnosed upstream; a second diagnostic here would
		// only confuse.
		return nil, ErrNotVariableRef
	}

	c.diags.Report(diagnostics.Diagnostic{
		Level:    diagnostics.LevelError,
		Category: diagnostics.CategoryVariableReference,
		Code:     "acc-not-a-var-ref",
		Message:  "expected a reference to a variable or data member",
		Span:     varExpr.GetSpan(),
	})

	return nil, ErrNotVariableRef
}
