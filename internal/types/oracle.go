package types

// ConversionStatus classifies the outcome of a contextual implicit
// conversion of an expression type to an integer type.
type ConversionStatus int

const (
	// ConvertAlreadyInteger: the type is an integer type, nothing to do.
	ConvertAlreadyInteger ConversionStatus = iota
	// ConvertViaUserDefined: exactly one viable non-explicit conversion
	// to an integer type exists; Result holds the target type.
	ConvertViaUserDefined
	// ConvertAmbiguous: more than one viable conversion exists;
	// Candidates holds all of them.
	ConvertAmbiguous
	// ConvertExplicitOnly: the only conversions to an integer type are
	// marked explicit and cannot be used implicitly.
	ConvertExplicitOnly
	// ConvertIncomplete: the class type is incomplete, so its
	// conversion functions are unknown.
	ConvertIncomplete
	// ConvertNone: no conversion to an integer type exists.
	ConvertNone
)

// ConversionResult is the outcome of Oracle.TryConvertToInteger.
type ConversionResult struct {
	Status     ConversionStatus
	Result     Type         // Target integer type for ConvertViaUserDefined
	Candidates []Conversion // Viable candidates for ambiguous/explicit cases
}

// Oracle is the capability interface the checker uses for every
// host-type-specific question. A frontend substitutes its own type
// system behind this interface.
type Oracle interface {
	// IsIntegerType reports whether t is an integer type.
	IsIntegerType(t Type) bool
	// IsPointerType reports whether t is a pointer type.
	IsPointerType(t Type) bool
	// ArrayElementType returns the element type of an array type.
	ArrayElementType(t Type) (Type, bool)
	// PointeeType returns the pointee type of a pointer type.
	PointeeType(t Type) (Type, bool)
	// TryConvertToInteger performs contextual implicit conversion of t
	// to an integer type and classifies the outcome.
	TryConvertToInteger(t Type) ConversionResult
	// IsComplete reports whether t is a complete type.
	IsComplete(t Type) bool
}

// StandardOracle implements Oracle over the closed type model in this
// package.
type StandardOracle struct{}

// NewStandardOracle returns an oracle for the built-in type model.
func NewStandardOracle() *StandardOracle { return &StandardOracle{} }

func (o *StandardOracle) IsIntegerType(t Type) bool {
	return t != nil && t.Kind() == KindInt
}

func (o *StandardOracle) IsPointerType(t Type) bool {
	return t != nil && t.Kind() == KindPointer
}

func (o *StandardOracle) ArrayElementType(t Type) (Type, bool) {
	arr, ok := t.(*Array)
	if !ok {
		return nil, false
	}

	return arr.Elem, true
}

func (o *StandardOracle) PointeeType(t Type) (Type, bool) {
	ptr, ok := t.(*Pointer)
	if !ok {
		return nil, false
	}

	return ptr.Pointee, true
}

func (o *StandardOracle) IsComplete(t Type) bool {
	switch tt := t.(type) {
	case *Class:
		return tt.Complete
	case *Array:
		// An array of unknown bound is incomplete.
		return tt.Size != nil || tt.DependentSize
	default:
		return t != nil
	}
}

func (o *StandardOracle) TryConvertToInteger(t Type) ConversionResult {
	if o.IsIntegerType(t) {
		return ConversionResult{Status: ConvertAlreadyInteger, Result: t}
	}

	cls, ok := t.(*Class)
	if !ok {
		return ConversionResult{Status: ConvertNone}
	}

	if !cls.Complete {
		return ConversionResult{Status: ConvertIncomplete}
	}

	var implicit, explicit []Conversion

	for _, conv := range cls.Conversions {
		if !o.IsIntegerType(conv.Result) {
			continue
		}

		if conv.Explicit {
			explicit = append(explicit, conv)
		} else {
			implicit = append(implicit, conv)
		}
	}

	switch {
	case len(implicit) == 1:
		return ConversionResult{
			Status:     ConvertViaUserDefined,
			Result:     implicit[0].Result,
			Candidates: implicit,
		}
	case len(implicit) > 1:
		return ConversionResult{Status: ConvertAmbiguous, Candidates: implicit}
	case len(explicit) > 0:
		return ConversionResult{Status: ConvertExplicitOnly, Candidates: explicit}
	default:
		return ConversionResult{Status: ConvertNone}
	}
}
