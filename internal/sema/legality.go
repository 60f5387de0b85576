package sema

import (
	"fmt"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
	"github.com/oacc-lang/oacc/internal/position"
)

// diagnoseConstructAppertainment checks whether a construct kind is
// permitted in the position it appeared. Compute constructs are valid
// only in statement position. Unimplemented kinds and the invalid
// sentinel are accepted silently so parsing can make forward progress.
func (c *Checker) diagnoseConstructAppertainment(k ast.DirectiveKind, startLoc position.Span, isStmt bool) error {
	switch k {
	case ast.DirectiveParallel, ast.DirectiveSerial, ast.DirectiveKernels:
		if !isStmt {
			c.diags.Report(diagnostics.Diagnostic{
				Level:    diagnostics.LevelError,
				Category: diagnostics.CategoryAppertainment,
				Code:     "acc-construct-appertainment",
				Message:  fmt.Sprintf("directive '%s' can only be used in a statement context", k),
				Span:     startLoc,
			})

			return ErrConstructAppertainment
		}
	default:
		// Invalid and unimplemented kinds have no rule encoded yet.
	}

	return nil
}

// clauseAppliesToDirective is the static decision table mapping
// (construct kind, clause kind) to legality, per the clause-restriction
// tables of the governing specification. Clause kinds not enumerated
// here default to "applies" so they fall through to the unimplemented
// warning instead of a misleading appertainment error.
func clauseAppliesToDirective(directiveKind ast.DirectiveKind, clauseKind ast.ClauseKind) bool {
	switch clauseKind {
	case ast.ClauseDefault:
		switch directiveKind {
		case ast.DirectiveParallel,
			ast.DirectiveSerial,
			ast.DirectiveKernels,
			ast.DirectiveParallelLoop,
			ast.DirectiveSerialLoop,
			ast.DirectiveKernelsLoop,
			ast.DirectiveData:
			return true
		default:
			return false
		}
	case ast.ClauseIf:
		switch directiveKind {
		case ast.DirectiveParallel,
			ast.DirectiveSerial,
			ast.DirectiveKernels,
			ast.DirectiveData,
			ast.DirectiveEnterData,
			ast.DirectiveExitData,
			ast.DirectiveHostData,
			ast.DirectiveInit,
			ast.DirectiveShutdown,
			ast.DirectiveSet,
			ast.DirectiveUpdate,
			ast.DirectiveWait,
			ast.DirectiveParallelLoop,
			ast.DirectiveSerialLoop,
			ast.DirectiveKernelsLoop:
			return true
		default:
			return false
		}
	case ast.ClauseSelf:
		switch directiveKind {
		case ast.DirectiveParallel,
			ast.DirectiveSerial,
			ast.DirectiveKernels,
			ast.DirectiveUpdate,
			ast.DirectiveParallelLoop,
			ast.DirectiveSerialLoop,
			ast.DirectiveKernelsLoop:
			return true
		default:
			return false
		}
	case ast.ClauseNumGangs, ast.ClauseNumWorkers, ast.ClauseVectorLength:
		switch directiveKind {
		case ast.DirectiveParallel,
			ast.DirectiveKernels,
			ast.DirectiveParallelLoop,
			ast.DirectiveKernelsLoop:
			return true
		default:
			return false
		}
	case ast.ClausePrivate:
		switch directiveKind {
		case ast.DirectiveParallel,
			ast.DirectiveSerial,
			ast.DirectiveLoop,
			ast.DirectiveParallelLoop,
			ast.DirectiveSerialLoop,
			ast.DirectiveKernelsLoop:
			return true
		default:
			return false
		}
	default:
		// Not restriction-checked yet; let it reach the unimplemented
		// warning instead.
		return true
	}
}
