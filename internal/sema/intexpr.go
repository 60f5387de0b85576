package sema

import (
	"fmt"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
	"github.com/oacc-lang/oacc/internal/position"
	"github.com/oacc-lang/oacc/internal/types"
)

// intExprContext names which diagnostic wording applies: a clause
// argument, a directive argument, or a bare sub-array bound.
func intExprContext(dk ast.DirectiveKind, ck ast.ClauseKind) string {
	if ck != ast.ClauseInvalid {
		return fmt.Sprintf("clause '%s'", ck)
	}

	if dk != ast.DirectiveInvalid {
		return fmt.Sprintf("directive '%s'", dk)
	}

	return "sub-array bound"
}

// ActOnIntExpr converts an expression to an integer type via
// contextual implicit conversion. Exactly one of dk/ck identifies the
// context, or both are invalid for sub-array bounds. Dependent
// expressions pass through unchanged for re-validation after
// instantiation. On failure no node is produced and the diagnostic
// identifies which of the conversion rules was violated.
func (c *Checker) ActOnIntExpr(dk ast.DirectiveKind, ck ast.ClauseKind, loc position.Position, intExpr ast.Expr) (ast.Expr, error) {
	if dk != ast.DirectiveInvalid && ck != ast.ClauseInvalid {
		panic("only one of directive or clause kind should be provided")
	}

	if ast.IsTypeDependent(intExpr) {
		return intExpr, nil
	}

	span := intExpr.GetSpan()
	res := c.oracle.TryConvertToInteger(intExpr.Type())

	switch res.Status {
	case types.ConvertAlreadyInteger:
		return intExpr, nil

	case types.ConvertViaUserDefined:
		converted := ast.Expr(&ast.ImplicitCast{
			Span:  span,
			Inner: intExpr,
			Cast:  ast.CastUserDefined,
			Ty:    res.Result,
		})
		// The conversion target was matched as an integer type, but
		// re-check in case the oracle implementation disagrees with
		// itself.
		if !c.oracle.IsIntegerType(converted.Type()) {
			return nil, ErrNotIntegerExpr
		}

		return converted, nil

	case types.ConvertIncomplete:
		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategoryIntConversion,
			Code:     "acc-int-expr-incomplete",
			Message: fmt.Sprintf("integer expression has incomplete class type '%s'",
				intExpr.Type()),
			Span: span,
		})

		return nil, ErrNotIntegerExpr

	case types.ConvertExplicitOnly:
		diag := diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategoryIntConversion,
			Code:     "acc-int-expr-explicit-conversion",
			Message: fmt.Sprintf("integer expression type '%s' has only explicit conversions to an integral type",
				intExpr.Type()),
			Span: span,
		}
		for _, cand := range res.Candidates {
			diag.Related = append(diag.Related, diagnostics.Related{
				Message: fmt.Sprintf("conversion to integral type '%s' declared here", cand.Result),
				Span:    span,
			})
		}

		c.diags.Report(diag)

		return nil, ErrNotIntegerExpr

	case types.ConvertAmbiguous:
		diag := diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategoryIntConversion,
			Code:     "acc-int-expr-ambiguous",
			Message: fmt.Sprintf("multiple conversions from expression type '%s' to an integral type",
				intExpr.Type()),
			Span: span,
		}
		for _, cand := range res.Candidates {
			diag.Related = append(diag.Related, diagnostics.Related{
				Message: fmt.Sprintf("conversion to integral type '%s' declared here", cand.Result),
				Span:    span,
			})
		}

		c.diags.Report(diag)

		return nil, ErrNotIntegerExpr

	default:
		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategoryIntConversion,
			Code:     "acc-int-expr-requires-integer",
			Message: fmt.Sprintf("%s requires expression of integer type ('%s' invalid)",
				intExprContext(dk, ck), intExpr.Type()),
			Span: span,
		})

		return nil, ErrNotIntegerExpr
	}
}
