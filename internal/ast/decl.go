package ast

import (
	"github.com/oacc-lang/oacc/internal/position"
	"github.com/oacc-lang/oacc/internal/types"
)

// Decl is the host-declaration surface the checker inspects when
// validating variable references. Declarations are owned by the host
// frontend; the checker only reads them.
type Decl interface {
	GetSpan() position.Span
	DeclName() string
	DeclType() types.Type
	declNode() // Marker method to distinguish declarations
}

// VarDecl is a host variable declaration.
type VarDecl struct {
	Span position.Span
	Name string
	Ty   types.Type
}

func (d *VarDecl) GetSpan() position.Span { return d.Span }
func (d *VarDecl) DeclName() string       { return d.Name }
func (d *VarDecl) DeclType() types.Type   { return d.Ty }
func (d *VarDecl) declNode()              {}

// FieldDecl is a data-member declaration of a class type.
type FieldDecl struct {
	Span position.Span
	Name string
	Ty   types.Type
}

func (d *FieldDecl) GetSpan() position.Span { return d.Span }
func (d *FieldDecl) DeclName() string       { return d.Name }
func (d *FieldDecl) DeclType() types.Type   { return d.Ty }
func (d *FieldDecl) declNode()              {}

// FuncDecl is a host function declaration. A reference to one is not a
// valid variable reference.
type FuncDecl struct {
	Span position.Span
	Name string
	Ty   types.Type
}

func (d *FuncDecl) GetSpan() position.Span { return d.Span }
func (d *FuncDecl) DeclName() string       { return d.Name }
func (d *FuncDecl) DeclType() types.Type   { return d.Ty }
func (d *FuncDecl) declNode()              {}

// TemplateParamDecl is a non-type template parameter declaration,
// which is a valid variable reference.
type TemplateParamDecl struct {
	Span position.Span
	Name string
	Ty   types.Type
}

func (d *TemplateParamDecl) GetSpan() position.Span { return d.Span }
func (d *TemplateParamDecl) DeclName() string       { return d.Name }
func (d *TemplateParamDecl) DeclType() types.Type   { return d.Ty }
func (d *TemplateParamDecl) declNode()              {}
