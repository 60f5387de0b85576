package sema

import (
	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/position"
)

// ParsedClause is the transient, parser-produced form of a clause. The
// parser fills it in as it recognizes the clause's pieces and hands it
// to ActOnClause, which reads it and constructs the permanent,
// immutable clause node. A ParsedClause is never retained after
// validation.
type ParsedClause struct {
	directiveKind ast.DirectiveKind
	clauseKind    ast.ClauseKind
	span          position.Span
	lParenLoc     position.Position
	intExprs      []ast.Expr
	condition     ast.Expr
	defaultKind   ast.DefaultKind
	varList       []ast.Expr
}

// NewParsedClause creates a parsed clause for the given directive and
// clause kind covering the given source span.
func NewParsedClause(directiveKind ast.DirectiveKind, clauseKind ast.ClauseKind, span position.Span) *ParsedClause {
	return &ParsedClause{
		directiveKind: directiveKind,
		clauseKind:    clauseKind,
		span:          span,
	}
}

// DirectiveKind returns the kind of the directive the clause is
// attached to.
func (p *ParsedClause) DirectiveKind() ast.DirectiveKind { return p.directiveKind }

// ClauseKind returns the kind of the clause.
func (p *ParsedClause) ClauseKind() ast.ClauseKind { return p.clauseKind }

// Span returns the source span of the clause.
func (p *ParsedClause) Span() position.Span { return p.span }

// LParenLoc returns the location of the opening parenthesis.
func (p *ParsedClause) LParenLoc() position.Position { return p.lParenLoc }

// IntExprs returns the clause's integer-expression arguments.
func (p *ParsedClause) IntExprs() []ast.Expr { return p.intExprs }

// ConditionExpr returns the clause's condition expression, or nil.
func (p *ParsedClause) ConditionExpr() ast.Expr { return p.condition }

// DefaultKind returns the sub-kind of a 'default' clause.
func (p *ParsedClause) DefaultKind() ast.DefaultKind { return p.defaultKind }

// VarList returns the clause's variable list.
func (p *ParsedClause) VarList() []ast.Expr { return p.varList }

// SetLParenLoc records the opening parenthesis location.
func (p *ParsedClause) SetLParenLoc(loc position.Position) { p.lParenLoc = loc }

// SetIntExprs records the integer-expression arguments. Each entry
// must already have passed ActOnIntExpr.
func (p *ParsedClause) SetIntExprs(exprs []ast.Expr) { p.intExprs = exprs }

// SetConditionExpr records the condition expression.
func (p *ParsedClause) SetConditionExpr(cond ast.Expr) { p.condition = cond }

// SetDefaultKind records the sub-kind of a 'default' clause.
func (p *ParsedClause) SetDefaultKind(k ast.DefaultKind) { p.defaultKind = k }

// SetVarList records the variable list. Each entry must already have
// passed ActOnVar.
func (p *ParsedClause) SetVarList(vars []ast.Expr) { p.varList = vars }
