package ast

import (
	"fmt"
	"strings"

	"github.com/oacc-lang/oacc/internal/position"
)

// Stmt represents all statement nodes in the AST.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// BlockStmt is a host compound statement, used as the structured block
// associated with a construct.
type BlockStmt struct {
	Span  position.Span
	Stmts []Stmt
}

func (s *BlockStmt) GetSpan() position.Span { return s.Span }
func (s *BlockStmt) String() string {
	parts := make([]string, len(s.Stmts))
	for i, st := range s.Stmts {
		parts[i] = st.String()
	}

	return "{ " + strings.Join(parts, "; ") + " }"
}
func (s *BlockStmt) stmtNode() {}

// ExprStmt is a host expression statement.
type ExprStmt struct {
	Span position.Span
	E    Expr
}

func (s *ExprStmt) GetSpan() position.Span { return s.Span }
func (s *ExprStmt) String() string         { return s.E.String() + ";" }
func (s *ExprStmt) stmtNode()              {}

// ComputeConstruct is a validated compute construct: the directive,
// its accepted clauses in source order, and the associated structured
// block. Built only at end-of-construct and immutable thereafter.
type ComputeConstruct struct {
	Span      position.Span
	Directive DirectiveKind
	Clauses   []Clause
	Body      Stmt
}

func (s *ComputeConstruct) GetSpan() position.Span { return s.Span }
func (s *ComputeConstruct) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "#pragma acc %s", s.Directive)
	for _, c := range s.Clauses {
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}

	if s.Body != nil {
		sb.WriteString(" ")
		sb.WriteString(s.Body.String())
	}

	return sb.String()
}
func (s *ComputeConstruct) stmtNode() {}
