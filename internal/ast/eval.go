package ast

import (
	"github.com/oacc-lang/oacc/internal/types"
)

// EvaluateAsInt constant-folds an expression to an arbitrary-precision
// integer value. It returns false for dependent expressions, recovery
// placeholders, and anything that is not a compile-time constant.
func EvaluateAsInt(e Expr) (types.IntValue, bool) {
	if e == nil || IsInstantiationDependent(e) {
		return types.IntValue{}, false
	}

	switch ee := e.(type) {
	case *IntLit:
		return ee.Value, true
	case *Paren:
		return EvaluateAsInt(ee.Inner)
	case *ImplicitCast:
		// Value-preserving casts only; a user-defined conversion is a
		// runtime call.
		if ee.Cast == CastUserDefined {
			return types.IntValue{}, false
		}

		return EvaluateAsInt(ee.Inner)
	case *Unary:
		if ee.Op != OpNeg {
			return types.IntValue{}, false
		}

		v, ok := EvaluateAsInt(ee.Operand)
		if !ok {
			return types.IntValue{}, false
		}

		return v.Neg(), true
	default:
		return types.IntValue{}, false
	}
}
