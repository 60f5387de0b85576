package sema

import (
	"fmt"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
	"github.com/oacc-lang/oacc/internal/position"
	"github.com/oacc-lang/oacc/internal/types"
)

// resolvePlaceholder resolves a deferred-type expression, such as an
// overload set, to a concrete expression. Everything else passes
// through unchanged.
func (c *Checker) resolvePlaceholder(e ast.Expr) (ast.Expr, error) {
	if e.Type() == nil || e.Type().Kind() != types.KindPlaceholder {
		return e, nil
	}

	if ov, ok := e.(*ast.OverloadRef); ok && len(ov.Candidates) == 1 {
		return &ast.DeclRef{Span: ov.Span, Decl: ov.Candidates[0]}, nil
	}

	c.diags.Report(diagnostics.Diagnostic{
		Level:    diagnostics.LevelError,
		Category: diagnostics.CategorySubarray,
		Code:     "acc-unresolved-overload",
		Message:  fmt.Sprintf("reference to overloaded function '%s' could not be resolved", e),
		Span:     e.GetSpan(),
	})

	return nil, ErrUnresolvedOverload
}

// decayToValue converts an lvalue expression to its value form.
func decayToValue(e ast.Expr) ast.Expr {
	switch e.(type) {
	case *ast.DeclRef, *ast.Member, *ast.Subscript:
		return &ast.ImplicitCast{
			Span:  e.GetSpan(),
			Inner: e,
			Cast:  ast.CastLValueToRValue,
			Ty:    e.Type(),
		}
	default:
		return e
	}
}

// mkRecovery substitutes a recovery placeholder of the expected type
// for an invalid sub-expression so the remaining checks can proceed
// without cascading diagnostics.
func mkRecovery(e ast.Expr, ty types.Type) ast.Expr {
	return &ast.Recovery{Span: e.GetSpan(), Sub: []ast.Expr{e}, Ty: ty}
}

// ActOnArraySectionExpr validates a sub-array expression,
// base[lower:length]. Base must be of pointer or array type with a
// complete, non-function element type. Lower bound and length are
// independently converted to integer expressions and, when constant,
// range-checked against the base's known array size, including the
// combined lower+length overflow check. A dependent sub-expression
// anywhere marks the whole section dependent and defers all numeric
// checks to the post-instantiation pass.
func (c *Checker) ActOnArraySectionExpr(base ast.Expr, lbLoc position.Position, lowerBound ast.Expr,
	colonLoc position.Position, length ast.Expr, rbLoc position.Position) (ast.Expr, error) {
	// Deferred types must be resolved before anything else; an
	// unresolved overload set has no type to check.
	var err error

	if base.Type() != types.SectionTy {
		if base, err = c.resolvePlaceholder(base); err != nil {
			return nil, err
		}
	}

	if lowerBound != nil {
		if lowerBound, err = c.resolvePlaceholder(lowerBound); err != nil {
			return nil, err
		}

		lowerBound = decayToValue(lowerBound)
	}

	if length != nil {
		if length, err = c.resolvePlaceholder(length); err != nil {
			return nil, err
		}

		length = decayToValue(length)
	}

	// The base must be an array or pointer, checked against the type
	// it was written with: a decayed base loses its array bound.
	originalBaseTy := ast.SectionBaseOriginalType(base)

	if !ast.IsTypeDependent(base) {
		var elementTy types.Type

		if pointee, ok := c.oracle.PointeeType(originalBaseTy); ok {
			elementTy = pointee
		} else if elem, ok := c.oracle.ArrayElementType(originalBaseTy); ok {
			elementTy = elem
		} else {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-base-type",
				Message:  fmt.Sprintf("sub-array base must be of pointer or array type ('%s' invalid)", originalBaseTy),
				Span:     base.GetSpan(),
			})

			return nil, ErrInvalidSubarray
		}

		if elementTy.Kind() == types.KindFunction {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-function-type",
				Message:  fmt.Sprintf("sub-array cannot be of function type '%s'", elementTy),
				Span:     base.GetSpan(),
			})

			return nil, ErrInvalidSubarray
		}

		// Size-dependent bounds checks below need a complete element.
		if !c.oracle.IsComplete(elementTy) {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-incomplete-type",
				Message:  fmt.Sprintf("sub-array element type '%s' is incomplete", elementTy),
				Span:     base.GetSpan(),
			})

			return nil, ErrInvalidSubarray
		}

		if base.Type() != types.SectionTy {
			if elem, ok := c.oracle.ArrayElementType(base.Type()); ok {
				base = &ast.ImplicitCast{
					Span:  base.GetSpan(),
					Inner: base,
					Cast:  ast.CastArrayToPointer,
					Ty:    &types.Pointer{Pointee: elem},
				}
			}
		}
	}

	// Each bound is independently an integer expression; a failure is
	// contained to a recovery placeholder so the sibling checks still
	// run.
	if lowerBound != nil && !ast.IsTypeDependent(lowerBound) {
		converted, convErr := c.ActOnIntExpr(ast.DirectiveInvalid, ast.ClauseInvalid,
			lowerBound.GetSpan().Start, lowerBound)
		if convErr != nil {
			lowerBound = mkRecovery(lowerBound, types.IntTy)
		} else {
			lowerBound = converted
		}
	}

	if length != nil && !ast.IsTypeDependent(length) {
		converted, convErr := c.ActOnIntExpr(ast.DirectiveInvalid, ast.ClauseInvalid,
			length.GetSpan().Start, length)
		if convErr != nil {
			length = mkRecovery(length, types.IntTy)
		} else {
			length = converted
		}
	}

	// Length is required unless the base array size is statically or
	// dependently known. Synthesize a placeholder length so the
	// post-instantiation pass does not diagnose this again.
	if length == nil && needsExplicitLength(originalBaseTy) {
		_, isArray := c.oracle.ArrayElementType(originalBaseTy)

		what := "not an array"
		if isArray {
			what = "an array of unknown bound"
		}

		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategorySubarray,
			Code:     "acc-subarray-no-length",
			Message:  fmt.Sprintf("length is unspecified and cannot be inferred because the subscripted value is %s", what),
			Span:     position.NewSpan(colonLoc, colonLoc),
		})

		length = &ast.Recovery{Span: position.NewSpan(colonLoc, colonLoc), Ty: types.IntTy}
	}

	// Constant-range validation. Every failed check resets its value
	// to unknown and its expression to a recovery placeholder, then
	// the remaining checks continue.
	var baseSize *types.IntValue
	if arr, ok := originalBaseTy.(*types.Array); ok && arr.Size != nil {
		baseSize = arr.Size
	}

	boundValue := func(e ast.Expr) *types.IntValue {
		if e == nil || ast.IsInstantiationDependent(e) {
			return nil
		}

		v, ok := ast.EvaluateAsInt(e)
		if !ok {
			return nil
		}

		return &v
	}

	lowerBoundValue := boundValue(lowerBound)
	lengthValue := boundValue(length)

	if lowerBoundValue != nil {
		if lowerBoundValue.IsNegative() {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-negative",
				Message:  fmt.Sprintf("sub-array lower bound evaluated to negative value %s", lowerBoundValue),
				Span:     lowerBound.GetSpan(),
			})

			lowerBoundValue = nil
			lowerBound = mkRecovery(lowerBound, lowerBound.Type())
		} else if baseSize != nil && lowerBoundValue.Cmp(*baseSize) >= 0 {
			// The lower bound is an index, so it must be strictly
			// less than the array size.
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-out-of-range",
				Message: fmt.Sprintf("sub-array lower bound evaluated to a value (%s) out of the range of the subscripted array size of %s",
					lowerBoundValue, baseSize),
				Span: lowerBound.GetSpan(),
			})

			lowerBoundValue = nil
			lowerBound = mkRecovery(lowerBound, lowerBound.Type())
		}
	}

	if lengthValue != nil {
		if lengthValue.IsNegative() {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-negative",
				Message:  fmt.Sprintf("sub-array length evaluated to negative value %s", lengthValue),
				Span:     length.GetSpan(),
			})

			lengthValue = nil
			length = mkRecovery(length, length.Type())
		} else if baseSize != nil && lengthValue.Cmp(*baseSize) > 0 {
			// The length may equal the array size: it covers the
			// whole array.
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategorySubarray,
				Code:     "acc-subarray-out-of-range",
				Message: fmt.Sprintf("sub-array length evaluated to a value (%s) out of the range of the subscripted array size of %s",
					lengthValue, baseSize),
				Span: length.GetSpan(),
			})

			lengthValue = nil
			length = mkRecovery(length, length.Type())
		}
	}

	// With all three values known, the sum must stay within the array.
	// IntValue.Add sign-extends to a common width, so mixed-signedness
	// operands cannot wrap.
	if baseSize != nil && lowerBoundValue != nil && lengthValue != nil &&
		lowerBoundValue.Add(*lengthValue).Cmp(*baseSize) > 0 {
		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategorySubarray,
			Code:     "acc-subarray-out-of-range",
			Message: fmt.Sprintf("sub-array lower bound %s and length %s extend past the subscripted array size of %s",
				lowerBoundValue, lengthValue, baseSize),
			Span: base.GetSpan(),
		})

		lowerBound = mkRecovery(lowerBound, lowerBound.Type())
		length = mkRecovery(length, length.Type())
	}

	// A dependent part anywhere defers all of the above to the
	// post-instantiation pass by marking the section dependent.
	sectionTy := types.SectionTy
	if ast.IsTypeDependent(base) ||
		(lowerBound != nil && ast.IsInstantiationDependent(lowerBound)) ||
		(length != nil && ast.IsInstantiationDependent(length)) {
		sectionTy = types.DependentTy
	}

	end := rbLoc
	end.Column++
	end.Offset++

	return &ast.SectionExpr{
		Span:     base.GetSpan().Merge(position.NewSpan(lbLoc, end)),
		Base:     base,
		Lower:    lowerBound,
		Length:   length,
		Ty:       sectionTy,
		ColonLoc: colonLoc,
		RBLoc:    rbLoc,
	}, nil
}

// needsExplicitLength reports whether omitting the length is an error
// for a base of the given original type: only a constant-size or
// dependently-sized array can infer it.
func needsExplicitLength(originalBaseTy types.Type) bool {
	if originalBaseTy == nil {
		return true
	}

	if types.IsDependent(originalBaseTy) {
		return false
	}

	arr, ok := originalBaseTy.(*types.Array)
	if !ok {
		return true
	}

	return arr.Size == nil && !arr.DependentSize
}
