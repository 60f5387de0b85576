// Package diagnostics provides structured error and warning reporting
// for the oacc directive checker. Each validation failure produces
// exactly one categorized record; notes that point at a related source
// location (such as an earlier duplicate clause) ride on the primary
// record instead of being emitted as separate diagnostics.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/oacc-lang/oacc/internal/position"
)

// Level represents the severity level of a diagnostic.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelNote
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	default:
		return "unknown"
	}
}

// Category represents the category of a diagnostic.
type Category int

const (
	// Construct-level legality.
	CategoryAppertainment Category = iota
	CategoryClauseLegality

	// Cross-clause checks.
	CategoryDuplicateClause
	CategoryClauseConflict

	// Clause argument checks.
	CategoryArgumentCount
	CategoryIntConversion

	// Variable list and sub-array checks.
	CategoryVariableReference
	CategorySubarray

	// Forward-progress warnings for unfinished surface area.
	CategoryUnimplemented
)

func (c Category) String() string {
	switch c {
	case CategoryAppertainment:
		return "appertainment"
	case CategoryClauseLegality:
		return "clause-legality"
	case CategoryDuplicateClause:
		return "duplicate-clause"
	case CategoryClauseConflict:
		return "clause-conflict"
	case CategoryArgumentCount:
		return "argument-count"
	case CategoryIntConversion:
		return "int-conversion"
	case CategoryVariableReference:
		return "variable-reference"
	case CategorySubarray:
		return "subarray"
	case CategoryUnimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Related provides additional context for a diagnostic from another
// source location, e.g. "previous clause is here".
type Related struct {
	Message string
	Span    position.Span
}

// Diagnostic represents a single diagnostic record.
type Diagnostic struct {
	Level    Level
	Category Category
	Code     string // Stable identifier like "acc-duplicate-clause"
	Message  string
	Span     position.Span
	Related  []Related
}

// String renders the diagnostic in "loc: level: message" form, with
// related notes on continuation lines.
func (d Diagnostic) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s: %s", d.Span.Start, d.Level, d.Message)
	for _, rel := range d.Related {
		fmt.Fprintf(&sb, "\n%s: note: %s", rel.Span.Start, rel.Message)
	}

	return sb.String()
}

// Engine collects diagnostics for one validation pass. Diagnostics are
// kept in report order, which for clause validation matches source
// order. One engine serves one Checker; there is no global state.
type Engine struct {
	diagnostics  []Diagnostic
	errorCount   int
	warningCount int
	maxErrors    int
}

// NewEngine creates a new diagnostic engine.
func NewEngine() *Engine {
	return &Engine{
		diagnostics: make([]Diagnostic, 0),
		maxErrors:   100,
	}
}

// SetErrorLimit sets the maximum number of errors retained.
func (e *Engine) SetErrorLimit(limit int) {
	e.maxErrors = limit
}

// Report adds a diagnostic to the engine.
func (e *Engine) Report(d Diagnostic) {
	if d.Level == LevelError && e.errorCount >= e.maxErrors {
		return
	}

	switch d.Level {
	case LevelError:
		e.errorCount++
	case LevelWarning:
		e.warningCount++
	}

	e.diagnostics = append(e.diagnostics, d)
}

// Diagnostics returns all collected diagnostics in report order.
func (e *Engine) Diagnostics() []Diagnostic {
	return e.diagnostics
}

// ErrorCount returns the number of errors reported so far.
func (e *Engine) ErrorCount() int {
	return e.errorCount
}

// WarningCount returns the number of warnings reported so far.
func (e *Engine) WarningCount() int {
	return e.warningCount
}

// HasErrors returns true if at least one error was reported.
func (e *Engine) HasErrors() bool {
	return e.errorCount > 0
}

// ByCategory returns the collected diagnostics of the given category.
func (e *Engine) ByCategory(c Category) []Diagnostic {
	var out []Diagnostic

	for _, d := range e.diagnostics {
		if d.Category == c {
			out = append(out, d)
		}
	}

	return out
}
