// Package types models the host-language type surface the directive
// checker needs: integer types, pointers, arrays with optionally known
// constant sizes, class types with user-defined conversions, and the
// sentinel types used for dependent expressions and array sections.
// The checker consumes it only through the Oracle interface, so a real
// frontend can substitute its own type system.
package types

import (
	"fmt"
	"strings"
)

// Kind represents the kind of a host type.
type Kind int

const (
	KindInt Kind = iota
	KindPointer
	KindArray
	KindClass
	KindFunction
	KindDependent
	KindSection
	KindPlaceholder
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindPointer:
		return "pointer"
	case KindArray:
		return "array"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindDependent:
		return "dependent"
	case KindSection:
		return "section"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Type is the closed interface over all host types.
type Type interface {
	Kind() Kind
	String() string
}

// Int is an integer type of the host language.
type Int struct {
	Name   string // Spelling such as "int" or "unsigned long"
	Width  uint   // Bit width
	Signed bool
}

func (t *Int) Kind() Kind     { return KindInt }
func (t *Int) String() string { return t.Name }

// Pointer is a pointer type.
type Pointer struct {
	Pointee Type
}

func (t *Pointer) Kind() Kind     { return KindPointer }
func (t *Pointer) String() string { return t.Pointee.String() + " *" }

// Array is an array type. Size is nil for arrays of unknown bound;
// DependentSize marks arrays whose bound is a template-dependent
// expression.
type Array struct {
	Elem          Type
	Size          *IntValue
	DependentSize bool
}

func (t *Array) Kind() Kind { return KindArray }
func (t *Array) String() string {
	switch {
	case t.Size != nil:
		return fmt.Sprintf("%s[%s]", t.Elem, t.Size)
	case t.DependentSize:
		return t.Elem.String() + "[<dependent>]"
	default:
		return t.Elem.String() + "[]"
	}
}

// ConstantSize reports whether the array has a statically known bound.
func (t *Array) ConstantSize() bool { return t.Size != nil }

// Conversion is a user-defined conversion function on a class type.
type Conversion struct {
	Result   Type
	Explicit bool
}

// Class is a class type. Conversions lists its user-defined conversion
// functions in declaration order.
type Class struct {
	Name        string
	Complete    bool
	Conversions []Conversion
}

func (t *Class) Kind() Kind     { return KindClass }
func (t *Class) String() string { return t.Name }

// Function is a function type.
type Function struct {
	Result Type
	Params []Type
}

func (t *Function) Kind() Kind { return KindFunction }
func (t *Function) String() string {
	params := make([]string, len(t.Params))
	for i, p := range t.Params {
		params[i] = p.String()
	}

	result := "void"
	if t.Result != nil {
		result = t.Result.String()
	}

	return fmt.Sprintf("%s (%s)", result, strings.Join(params, ", "))
}

// Dependent is the sentinel type of expressions whose concrete type is
// only known after template instantiation.
type Dependent struct{}

func (t *Dependent) Kind() Kind     { return KindDependent }
func (t *Dependent) String() string { return "<dependent>" }

// Section is the sentinel type of a validated array-section expression.
type Section struct{}

func (t *Section) Kind() Kind     { return KindSection }
func (t *Section) String() string { return "<array section>" }

// Placeholder is the sentinel type of deferred expressions such as
// unresolved overload sets. It must be resolved to a concrete type
// before any further semantic check.
type Placeholder struct{}

func (t *Placeholder) Kind() Kind     { return KindPlaceholder }
func (t *Placeholder) String() string { return "<overloaded function>" }

// Canonical sentinel instances. Types compare by pointer identity for
// these singletons.
var (
	IntTy         = &Int{Name: "int", Width: 32, Signed: true}
	UnsignedIntTy = &Int{Name: "unsigned int", Width: 32, Signed: false}
	DependentTy   Type = &Dependent{}
	SectionTy     Type = &Section{}
	PlaceholderTy Type = &Placeholder{}
)

// IsDependent reports whether t is the dependent sentinel.
func IsDependent(t Type) bool {
	return t != nil && t.Kind() == KindDependent
}
