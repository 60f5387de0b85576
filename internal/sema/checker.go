// Package sema implements semantic validation and AST construction for
// directive constructs and their clauses. The parser drives it through
// the ActOn* entry points; each Checker owns its own diagnostic engine
// and is independent of every other Checker, so separate constructs or
// translation units can be validated concurrently.
package sema

import (
	"errors"
	"fmt"

	semver "github.com/Masterminds/semver/v3"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
	"github.com/oacc-lang/oacc/internal/position"
	"github.com/oacc-lang/oacc/internal/types"
)

// DefaultStandard is the standard revision the legality tables encode.
const DefaultStandard = "3.3"

// Sentinel errors returned by the validation entry points. The
// diagnostic engine carries the user-facing detail; these only signal
// failure to the driver.
var (
	ErrConstructAppertainment = errors.New("construct not valid in this position")
	ErrInvalidDirective       = errors.New("invalid directive kind")
	ErrNotIntegerExpr         = errors.New("expression does not convert to an integer type")
	ErrNotVariableRef         = errors.New("expression is not a variable reference")
	ErrInvalidSubarray        = errors.New("invalid sub-array expression")
	ErrUnresolvedOverload     = errors.New("unresolved overload set")
)

// Options configures a Checker.
type Options struct {
	// Standard is the revision of the governing specification to
	// enforce, e.g. "3.3". Empty selects DefaultStandard.
	Standard string
	// Oracle answers host-type questions. Nil selects the built-in
	// type model.
	Oracle types.Oracle
	// ErrorLimit caps retained errors; zero keeps the engine default.
	ErrorLimit int
}

// Checker validates directive constructs and builds their AST nodes.
type Checker struct {
	oracle   types.Oracle
	diags    *diagnostics.Engine
	standard *semver.Version
}

// supportedStandards is the revision range the checker accepts. The
// legality tables encode 3.3 and are not forked per revision.
var supportedStandards = func() *semver.Constraints {
	c, err := semver.NewConstraint(">=2.0, <=3.3")
	if err != nil {
		panic(err)
	}

	return c
}()

// NewChecker creates a Checker for one validation pass.
func NewChecker(opts Options) (*Checker, error) {
	std := opts.Standard
	if std == "" {
		std = DefaultStandard
	}

	version, err := semver.NewVersion(std)
	if err != nil {
		return nil, fmt.Errorf("invalid standard revision %q: %w", std, err)
	}

	if !supportedStandards.Check(version) {
		return nil, fmt.Errorf("unsupported standard revision %s: want %s", version, supportedStandards)
	}

	oracle := opts.Oracle
	if oracle == nil {
		oracle = types.NewStandardOracle()
	}

	engine := diagnostics.NewEngine()
	if opts.ErrorLimit > 0 {
		engine.SetErrorLimit(opts.ErrorLimit)
	}

	return &Checker{oracle: oracle, diags: engine, standard: version}, nil
}

// Diagnostics returns the checker's diagnostic engine.
func (c *Checker) Diagnostics() *diagnostics.Engine { return c.diags }

// Standard returns the standard revision this checker enforces.
func (c *Checker) Standard() *semver.Version { return c.standard }

// ActOnConstruct runs construct-level legalization when a directive is
// first seen. Invalid kinds are deliberately not diagnosed here so
// clause parsing can continue; unimplemented kinds warn once.
func (c *Checker) ActOnConstruct(k ast.DirectiveKind, startLoc position.Span) {
	switch k {
	case ast.DirectiveInvalid:
		// An invalid kind has nothing to check; keep going so clause
		// parsing still produces diagnostics.
	case ast.DirectiveParallel, ast.DirectiveSerial, ast.DirectiveKernels:
		// These constructs take no arguments, so there is no
		// legalization to do at the start.
	default:
		c.diags.Report(diagnostics.Diagnostic{
			Level:    diagnostics.LevelWarning,
			Category: diagnostics.CategoryUnimplemented,
			Code:     "acc-construct-unimplemented",
			Message:  fmt.Sprintf("directive '%s' not yet implemented, statement ignored", k),
			Span:     startLoc,
		})
	}
}

// ActOnStartStmtDirective validates that the construct may appear in
// statement position. A non-nil error marks the construct erroneous;
// the caller keeps parsing clauses regardless.
func (c *Checker) ActOnStartStmtDirective(k ast.DirectiveKind, startLoc position.Span) error {
	return c.diagnoseConstructAppertainment(k, startLoc, true)
}

// ActOnStartDeclDirective validates that the construct may appear in
// declaration position.
func (c *Checker) ActOnStartDeclDirective(k ast.DirectiveKind, startLoc position.Span) error {
	return c.diagnoseConstructAppertainment(k, startLoc, false)
}

// ActOnAssociatedStmt associates the structured block with the
// construct. Compute constructs accept any statement: the host grammar
// already guarantees single-entry single-exit shape.
func (c *Checker) ActOnAssociatedStmt(k ast.DirectiveKind, assoc ast.Stmt) ast.Stmt {
	switch k {
	case ast.DirectiveParallel, ast.DirectiveSerial, ast.DirectiveKernels:
		return assoc
	default:
		panic("unimplemented associated statement application: " + k.String())
	}
}

// ActOnEndStmtDirective builds the final construct node once all
// clauses and the associated statement are known. Unimplemented kinds
// return (nil, nil) so the surrounding statement sequence stays
// well-formed; an invalid kind is a hard error that drops the whole
// construct.
func (c *Checker) ActOnEndStmtDirective(k ast.DirectiveKind, span position.Span, clauses []ast.Clause, assoc ast.Stmt) (ast.Stmt, error) {
	switch k {
	case ast.DirectiveInvalid:
		return nil, ErrInvalidDirective
	case ast.DirectiveParallel, ast.DirectiveSerial, ast.DirectiveKernels:
		return &ast.ComputeConstruct{
			Span:      span,
			Directive: k,
			Clauses:   clauses,
			Body:      assoc,
		}, nil
	default:
		return nil, nil
	}
}

// ActOnEndDeclDirective ends a declaration-position construct. No
// declaration-attached constructs are implemented, so the result is
// always an empty declaration group.
func (c *Checker) ActOnEndDeclDirective() []ast.Decl { return nil }
