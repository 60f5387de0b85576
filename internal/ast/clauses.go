package ast

import (
	"fmt"
	"strings"

	"github.com/oacc-lang/oacc/internal/position"
)

// Clause is the interface over all validated clause nodes. Each
// variant holds only the fields relevant to its kind and is immutable
// once constructed.
type Clause interface {
	Node
	// ClauseKind returns the kind tag of the clause
	ClauseKind() ClauseKind
	clauseNode() // Marker method to distinguish clauses
}

// DefaultClause is a validated 'default(none|present)' clause.
type DefaultClause struct {
	Span      position.Span
	LParenLoc position.Position
	Default   DefaultKind
}

func (c *DefaultClause) GetSpan() position.Span { return c.Span }
func (c *DefaultClause) ClauseKind() ClauseKind { return ClauseDefault }
func (c *DefaultClause) String() string         { return fmt.Sprintf("default(%s)", c.Default) }
func (c *DefaultClause) clauseNode()            {}

// IfClause is a validated 'if(condition)' clause.
type IfClause struct {
	Span      position.Span
	LParenLoc position.Position
	Condition Expr
}

func (c *IfClause) GetSpan() position.Span { return c.Span }
func (c *IfClause) ClauseKind() ClauseKind { return ClauseIf }
func (c *IfClause) String() string         { return fmt.Sprintf("if(%s)", c.Condition) }
func (c *IfClause) clauseNode()            {}

// SelfClause is a validated 'self(condition)' clause.
type SelfClause struct {
	Span      position.Span
	LParenLoc position.Position
	Condition Expr
}

func (c *SelfClause) GetSpan() position.Span { return c.Span }
func (c *SelfClause) ClauseKind() ClauseKind { return ClauseSelf }
func (c *SelfClause) String() string         { return fmt.Sprintf("self(%s)", c.Condition) }
func (c *SelfClause) clauseNode()            {}

// NumGangsClause is a validated 'num_gangs(...)' clause. Args holds
// the integer expressions in source order; the node is constructed
// even when the argument count was diagnosed as wrong.
type NumGangsClause struct {
	Span      position.Span
	LParenLoc position.Position
	Args      []Expr
}

func (c *NumGangsClause) GetSpan() position.Span { return c.Span }
func (c *NumGangsClause) ClauseKind() ClauseKind { return ClauseNumGangs }
func (c *NumGangsClause) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}

	return fmt.Sprintf("num_gangs(%s)", strings.Join(args, ", "))
}
func (c *NumGangsClause) clauseNode() {}

// NumWorkersClause is a validated 'num_workers(n)' clause.
type NumWorkersClause struct {
	Span      position.Span
	LParenLoc position.Position
	Arg       Expr
}

func (c *NumWorkersClause) GetSpan() position.Span { return c.Span }
func (c *NumWorkersClause) ClauseKind() ClauseKind { return ClauseNumWorkers }
func (c *NumWorkersClause) String() string         { return fmt.Sprintf("num_workers(%s)", c.Arg) }
func (c *NumWorkersClause) clauseNode()            {}

// VectorLengthClause is a validated 'vector_length(n)' clause.
type VectorLengthClause struct {
	Span      position.Span
	LParenLoc position.Position
	Arg       Expr
}

func (c *VectorLengthClause) GetSpan() position.Span { return c.Span }
func (c *VectorLengthClause) ClauseKind() ClauseKind { return ClauseVectorLength }
func (c *VectorLengthClause) String() string         { return fmt.Sprintf("vector_length(%s)", c.Arg) }
func (c *VectorLengthClause) clauseNode()            {}

// PrivateClause is a validated 'private(var-list)' clause. Multiple
// private clauses may coexist on one construct, each contributing to
// the union of privatized variables.
type PrivateClause struct {
	Span      position.Span
	LParenLoc position.Position
	Vars      []Expr
}

func (c *PrivateClause) GetSpan() position.Span { return c.Span }
func (c *PrivateClause) ClauseKind() ClauseKind { return ClausePrivate }
func (c *PrivateClause) String() string {
	vars := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		vars[i] = v.String()
	}

	return fmt.Sprintf("private(%s)", strings.Join(vars, ", "))
}
func (c *PrivateClause) clauseNode() {}

// FindClause returns the first clause of the given kind in source
// order, or nil. Duplicate and conflict detection always points its
// note at the result of this scan, which is the textually earlier
// occurrence.
func FindClause(clauses []Clause, kind ClauseKind) Clause {
	for _, c := range clauses {
		if c.ClauseKind() == kind {
			return c
		}
	}

	return nil
}
