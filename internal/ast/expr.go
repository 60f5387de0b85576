package ast

import (
	"fmt"
	"strings"

	"github.com/oacc-lang/oacc/internal/position"
	"github.com/oacc-lang/oacc/internal/types"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// GetSpan returns the source span covered by this node
	GetSpan() position.Span
	// String returns a human-readable representation of the node
	String() string
}

// Expr represents all expression nodes in the AST.
type Expr interface {
	Node
	// Type returns the host type of the expression
	Type() types.Type
	exprNode() // Marker method to distinguish expressions
}

// CastKind classifies an implicit conversion node.
type CastKind int

const (
	// CastLValueToRValue reads the value out of an lvalue.
	CastLValueToRValue CastKind = iota
	// CastArrayToPointer decays an array to a pointer to its first
	// element.
	CastArrayToPointer
	// CastUserDefined invokes a user-defined conversion function.
	CastUserDefined
)

// DeclRef is a reference to a host declaration.
type DeclRef struct {
	Span position.Span
	Decl Decl
}

func (e *DeclRef) GetSpan() position.Span { return e.Span }
func (e *DeclRef) Type() types.Type       { return e.Decl.DeclType() }
func (e *DeclRef) String() string         { return e.Decl.DeclName() }
func (e *DeclRef) exprNode()              {}

// Member is a data-member access expression, base.member.
type Member struct {
	Span   position.Span
	Base   Expr
	Member Decl
}

func (e *Member) GetSpan() position.Span { return e.Span }
func (e *Member) Type() types.Type       { return e.Member.DeclType() }
func (e *Member) String() string         { return e.Base.String() + "." + e.Member.DeclName() }
func (e *Member) exprNode()              {}

// This is a reference to the current object inside a member function.
type This struct {
	Span position.Span
	Ty   types.Type
}

func (e *This) GetSpan() position.Span { return e.Span }
func (e *This) Type() types.Type       { return e.Ty }
func (e *This) String() string         { return "this" }
func (e *This) exprNode()              {}

// Subscript is an array subscript expression, base[index].
type Subscript struct {
	Span  position.Span
	Base  Expr
	Index Expr
	Ty    types.Type
}

func (e *Subscript) GetSpan() position.Span { return e.Span }
func (e *Subscript) Type() types.Type       { return e.Ty }
func (e *Subscript) String() string         { return fmt.Sprintf("%s[%s]", e.Base, e.Index) }
func (e *Subscript) exprNode()              {}

// Paren is a parenthesized expression.
type Paren struct {
	Span  position.Span
	Inner Expr
}

func (e *Paren) GetSpan() position.Span { return e.Span }
func (e *Paren) Type() types.Type       { return e.Inner.Type() }
func (e *Paren) String() string         { return "(" + e.Inner.String() + ")" }
func (e *Paren) exprNode()              {}

// ImplicitCast wraps an expression whose value underwent an implicit
// conversion.
type ImplicitCast struct {
	Span  position.Span
	Inner Expr
	Cast  CastKind
	Ty    types.Type
}

func (e *ImplicitCast) GetSpan() position.Span { return e.Span }
func (e *ImplicitCast) Type() types.Type       { return e.Ty }
func (e *ImplicitCast) String() string         { return e.Inner.String() }
func (e *ImplicitCast) exprNode()              {}

// IntLit is an integer literal carrying its evaluated value.
type IntLit struct {
	Span  position.Span
	Value types.IntValue
	Ty    types.Type
}

func (e *IntLit) GetSpan() position.Span { return e.Span }
func (e *IntLit) Type() types.Type       { return e.Ty }
func (e *IntLit) String() string         { return e.Value.String() }
func (e *IntLit) exprNode()              {}

// UnaryOp is the operator of a Unary expression.
type UnaryOp int

const (
	// OpNeg is arithmetic negation.
	OpNeg UnaryOp = iota
)

// Unary is a unary operator expression.
type Unary struct {
	Span    position.Span
	Op      UnaryOp
	Operand Expr
	Ty      types.Type
}

func (e *Unary) GetSpan() position.Span { return e.Span }
func (e *Unary) Type() types.Type       { return e.Ty }
func (e *Unary) String() string         { return "-" + e.Operand.String() }
func (e *Unary) exprNode()              {}

// Call is a function call expression.
type Call struct {
	Span   position.Span
	Callee Expr
	Args   []Expr
	Ty     types.Type
}

func (e *Call) GetSpan() position.Span { return e.Span }
func (e *Call) Type() types.Type       { return e.Ty }
func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("%s(%s)", e.Callee, strings.Join(args, ", "))
}
func (e *Call) exprNode() {}

// Recovery is a synthetic placeholder of a known type substituted for
// an invalid sub-expression, so validation can continue without
// cascading diagnostics. Sub holds the original expressions, if any.
type Recovery struct {
	Span position.Span
	Sub  []Expr
	Ty   types.Type
}

func (e *Recovery) GetSpan() position.Span { return e.Span }
func (e *Recovery) Type() types.Type       { return e.Ty }
func (e *Recovery) String() string         { return "<recovery>" }
func (e *Recovery) exprNode()              {}

// DependentRef is a reference whose meaning is resolved only after
// template instantiation.
type DependentRef struct {
	Span position.Span
	Name string
}

func (e *DependentRef) GetSpan() position.Span { return e.Span }
func (e *DependentRef) Type() types.Type       { return types.DependentTy }
func (e *DependentRef) String() string         { return e.Name }
func (e *DependentRef) exprNode()              {}

// OverloadRef is a reference to an overload set. Its type is the
// placeholder sentinel and must be resolved to a single declaration
// before any semantic check.
type OverloadRef struct {
	Span       position.Span
	Name       string
	Candidates []Decl
}

func (e *OverloadRef) GetSpan() position.Span { return e.Span }
func (e *OverloadRef) Type() types.Type       { return types.PlaceholderTy }
func (e *OverloadRef) String() string         { return e.Name }
func (e *OverloadRef) exprNode()              {}

// SectionExpr is a validated sub-array expression,
// base[lower:length]. Lower and Length may be nil. The type is the
// section sentinel, or the dependent sentinel when any sub-expression
// is dependent. Constructed only by the array-section validator.
type SectionExpr struct {
	Span     position.Span
	Base     Expr
	Lower    Expr
	Length   Expr
	Ty       types.Type
	ColonLoc position.Position
	RBLoc    position.Position
}

func (e *SectionExpr) GetSpan() position.Span { return e.Span }
func (e *SectionExpr) Type() types.Type       { return e.Ty }
func (e *SectionExpr) String() string {
	lower, length := "", ""
	if e.Lower != nil {
		lower = e.Lower.String()
	}

	if e.Length != nil {
		length = e.Length.String()
	}

	return fmt.Sprintf("%s[%s:%s]", e.Base, lower, length)
}
func (e *SectionExpr) exprNode() {}

// SectionBaseOriginalType returns the type the base of a sub-array was
// written with, before any decay: it unwraps section and subscript
// layers, then re-applies one element/pointee step per unwrapped layer
// to the underlying base's type. The checker needs the original type
// because a decayed base loses its constant array bound.
func SectionBaseOriginalType(e Expr) types.Type {
	e = IgnoreParenImpCasts(e)

	levels := 0

	for {
		if sec, ok := e.(*SectionExpr); ok {
			e = IgnoreParenImpCasts(sec.Base)
			levels++

			continue
		}

		if sub, ok := e.(*Subscript); ok {
			e = IgnoreParenImpCasts(sub.Base)
			levels++

			continue
		}

		break
	}

	t := e.Type()
	for i := 0; i < levels; i++ {
		switch tt := t.(type) {
		case *types.Array:
			t = tt.Elem
		case *types.Pointer:
			t = tt.Pointee
		default:
			return t
		}
	}

	return t
}

// IgnoreParenImpCasts strips parentheses and implicit casts from an
// expression.
func IgnoreParenImpCasts(e Expr) Expr {
	for {
		switch ee := e.(type) {
		case *Paren:
			e = ee.Inner
		case *ImplicitCast:
			e = ee.Inner
		default:
			return e
		}
	}
}

// IsTypeDependent reports whether the expression's type is the
// dependent sentinel.
func IsTypeDependent(e Expr) bool {
	return e != nil && types.IsDependent(e.Type())
}

// IsInstantiationDependent reports whether any part of the expression
// depends on a template parameter, even if its type is concrete.
func IsInstantiationDependent(e Expr) bool {
	if e == nil {
		return false
	}

	if IsTypeDependent(e) {
		return true
	}

	switch ee := e.(type) {
	case *DependentRef:
		return true
	case *Paren:
		return IsInstantiationDependent(ee.Inner)
	case *ImplicitCast:
		return IsInstantiationDependent(ee.Inner)
	case *Unary:
		return IsInstantiationDependent(ee.Operand)
	case *Subscript:
		return IsInstantiationDependent(ee.Base) || IsInstantiationDependent(ee.Index)
	case *Member:
		return IsInstantiationDependent(ee.Base)
	case *SectionExpr:
		return IsInstantiationDependent(ee.Base) ||
			IsInstantiationDependent(ee.Lower) ||
			IsInstantiationDependent(ee.Length)
	case *Call:
		if IsInstantiationDependent(ee.Callee) {
			return true
		}

		for _, arg := range ee.Args {
			if IsInstantiationDependent(arg) {
				return true
			}
		}

		return false
	default:
		return false
	}
}
