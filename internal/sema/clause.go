package sema

import (
	"fmt"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
)

// checkAlreadyHasClauseOfKind reports a hard error, with a note at the
// earlier occurrence, when a clause of the same kind was already
// accepted on this construct. Returns true when the duplicate exists.
func (c *Checker) checkAlreadyHasClauseOfKind(existing []ast.Clause, clause *ParsedClause) bool {
	prev := ast.FindClause(existing, clause.ClauseKind())
	if prev == nil {
		return false
	}

	c.diags.Report(diagnostics.Diagnostic{
		Level:    diagnostics.LevelError,
		Category: diagnostics.CategoryDuplicateClause,
		Code:     "acc-duplicate-clause",
		Message: fmt.Sprintf("directive '%s' cannot have more than one '%s' clause",
			clause.DirectiveKind(), clause.ClauseKind()),
		Span: clause.Span(),
		Related: []diagnostics.Related{
			{Message: "previous clause is here", Span: prev.GetSpan()},
		},
	})

	return true
}

// diagnoseIfSelfConflict warns when both an 'if' and a 'self' clause
// appear on the same compute construct: a true 'if' condition renders
// 'self' a no-op. Both clauses stay accepted. The check only applies
// to compute constructs today; 'self' on 'update' takes a var-list and
// needs different semantics before this can be generalized.
func (c *Checker) diagnoseIfSelfConflict(existing []ast.Clause, clause *ParsedClause, otherKind ast.ClauseKind) {
	prev := ast.FindClause(existing, otherKind)
	if prev == nil {
		return
	}

	c.diags.Report(diagnostics.Diagnostic{
		Level:    diagnostics.LevelWarning,
		Category: diagnostics.CategoryClauseConflict,
		Code:     "acc-if-self-conflict",
		Message:  "'self' clause has no effect when an 'if' clause evaluates to true",
		Span:     clause.Span(),
		Related: []diagnostics.Related{
			{Message: "previous clause is here", Span: prev.GetSpan()},
		},
	})
}

// ActOnClause validates one parsed clause against the clauses already
// accepted on the same construct and constructs its permanent node.
// It returns nil when the clause is dropped: invalid kind, failed
// appertainment, duplicate of a single-occurrence kind, or a kind
// whose restrictions are not implemented yet (the last warns rather
// than errors, and the construct is still built without the clause).
func (c *Checker) ActOnClause(existing []ast.Clause, clause *ParsedClause) ast.Clause {
	if clause.ClauseKind() == ast.ClauseInvalid {
		return nil
	}

	if !clauseAppliesToDirective(clause.DirectiveKind(), clause.ClauseKind()) {
		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelError,
			Category: diagnostics.CategoryClauseLegality,
			Code:     "acc-clause-appertainment",
			Message: fmt.Sprintf("directive '%s' does not allow a '%s' clause",
				clause.DirectiveKind(), clause.ClauseKind()),
			Span: clause.Span(),
		})

		return nil
	}

	// Clause restrictions are only fully implemented for compute
	// constructs; on any other (legal) construct the clause falls
	// through to the unimplemented warning below.
	if ast.IsComputeDirective(clause.DirectiveKind()) {
		switch clause.ClauseKind() {
		case ast.ClauseDefault:
			// Don't add an invalid clause to the AST.
			if clause.DefaultKind() == ast.DefaultInvalid {
				return nil
			}

			// At most one 'default' clause may appear, and its
			// argument must be 'none' or 'present'. The argument
			// spelling is diagnosed during parsing.
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			return &ast.DefaultClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Default:   clause.DefaultKind(),
			}

		case ast.ClauseIf:
			// The standard has no prose disallowing duplicates, but
			// other compilers diagnose this too.
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			// The parser already validated the condition expression.
			c.diagnoseIfSelfConflict(existing, clause, ast.ClauseSelf)

			return &ast.IfClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Condition: clause.ConditionExpr(),
			}

		case ast.ClauseSelf:
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			c.diagnoseIfSelfConflict(existing, clause, ast.ClauseIf)

			return &ast.SelfClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Condition: clause.ConditionExpr(),
			}

		case ast.ClauseNumGangs:
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			if len(clause.IntExprs()) == 0 {
				c.diags.Report(diagnostics.Diagnostic{
					Level:    diagnostics.LevelError,
					Category: diagnostics.CategoryArgumentCount,
					Code:     "acc-num-gangs-args",
					Message:  "'num_gangs' clause requires at least one argument",
					Span:     clause.Span(),
				})
			}

			maxArgs := 1
			if clause.DirectiveKind() == ast.DirectiveParallel ||
				clause.DirectiveKind() == ast.DirectiveParallelLoop {
				maxArgs = 3
			}

			if len(clause.IntExprs()) > maxArgs {
				c.diags.Report(diagnostics.Diagnostic{
					Level:    diagnostics.LevelError,
					Category: diagnostics.CategoryArgumentCount,
					Code:     "acc-num-gangs-args",
					Message: fmt.Sprintf("'num_gangs' clause on a '%s' directive allows a maximum of %d arguments, but %d were provided",
						clause.DirectiveKind(), maxArgs, len(clause.IntExprs())),
					Span: clause.Span(),
				})
			}

			// Build the node even when the argument count is wrong:
			// a complete-but-flagged AST beats a missing node.
			return &ast.NumGangsClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Args:      clause.IntExprs(),
			}

		case ast.ClauseNumWorkers:
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			if len(clause.IntExprs()) != 1 {
				panic("invalid number of expressions for num_workers clause")
			}

			return &ast.NumWorkersClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Arg:       clause.IntExprs()[0],
			}

		case ast.ClauseVectorLength:
			if c.checkAlreadyHasClauseOfKind(existing, clause) {
				return nil
			}

			if len(clause.IntExprs()) != 1 {
				panic("invalid number of expressions for vector_length clause")
			}

			return &ast.VectorLengthClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Arg:       clause.IntExprs()[0],
			}

		case ast.ClausePrivate:
			// ActOnVar validated every entry, so there is nothing
			// left to check. Duplicate variables across private
			// clauses are deliberately not diagnosed; nothing in the
			// standard's text justifies rejecting them.
			return &ast.PrivateClause{
				Span:      clause.Span(),
				LParenLoc: clause.LParenLoc(),
				Vars:      clause.VarList(),
			}
		}
	}

	c.diags.Report(diagnostics.Diagnostic{
		Level:    diagnostics.LevelWarning,
		Category: diagnostics.CategoryUnimplemented,
		Code:     "acc-clause-unimplemented",
		Message:  fmt.Sprintf("clause '%s' not yet implemented, clause ignored", clause.ClauseKind()),
		Span:     clause.Span(),
	})

	return nil
}
