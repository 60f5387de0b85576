package sema

import (
	"strings"
	"testing"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
	"github.com/oacc-lang/oacc/internal/types"
)

func defaultClause(d ast.DirectiveKind, col int) *ParsedClause {
	p := NewParsedClause(d, ast.ClauseDefault, spanAt(col))
	p.SetDefaultKind(ast.DefaultNone)

	return p
}

func condClause(d ast.DirectiveKind, k ast.ClauseKind, col int) *ParsedClause {
	p := NewParsedClause(d, k, spanAt(col))
	p.SetConditionExpr(varRef("cond", types.IntTy))

	return p
}

func intArgClause(d ast.DirectiveKind, k ast.ClauseKind, col, args int) *ParsedClause {
	p := NewParsedClause(d, k, spanAt(col))

	exprs := make([]ast.Expr, args)
	for i := range exprs {
		exprs[i] = intLit(int64(i + 1))
	}

	p.SetIntExprs(exprs)

	return p
}

func TestInvalidClauseDropped(t *testing.T) {
	checker := newTestChecker(t)

	node := checker.ActOnClause(nil, NewParsedClause(ast.DirectiveParallel, ast.ClauseInvalid, spanAt(1)))
	if node != nil {
		t.Errorf("ActOnClause(invalid) = %v, want nil", node)
	}

	if got := len(checker.Diagnostics().Diagnostics()); got != 0 {
		t.Errorf("diagnostic count = %d, want 0", got)
	}
}

func TestClauseAppertainmentError(t *testing.T) {
	checker := newTestChecker(t)

	node := checker.ActOnClause(nil, intArgClause(ast.DirectiveSerial, ast.ClauseNumGangs, 1, 1))
	if node != nil {
		t.Errorf("ActOnClause(num_gangs on serial) = %v, want nil", node)
	}

	diags := checker.Diagnostics().Diagnostics()
	if len(diags) != 1 || diags[0].Category != diagnostics.CategoryClauseLegality {
		t.Fatalf("diagnostics = %v, want one clause-legality error", diagMessages(checker.Diagnostics()))
	}
}

func TestDuplicateClauseDisallowed(t *testing.T) {
	kinds := []struct {
		name  string
		first func(col int) *ParsedClause
	}{
		{"default", func(col int) *ParsedClause { return defaultClause(ast.DirectiveParallel, col) }},
		{"if", func(col int) *ParsedClause { return condClause(ast.DirectiveParallel, ast.ClauseIf, col) }},
		{"self", func(col int) *ParsedClause { return condClause(ast.DirectiveParallel, ast.ClauseSelf, col) }},
		{"num_gangs", func(col int) *ParsedClause { return intArgClause(ast.DirectiveParallel, ast.ClauseNumGangs, col, 1) }},
		{"num_workers", func(col int) *ParsedClause { return intArgClause(ast.DirectiveParallel, ast.ClauseNumWorkers, col, 1) }},
		{"vector_length", func(col int) *ParsedClause { return intArgClause(ast.DirectiveParallel, ast.ClauseVectorLength, col, 1) }},
	}

	for _, tt := range kinds {
		t.Run(tt.name, func(t *testing.T) {
			checker := newTestChecker(t)

			var accepted []ast.Clause

			first := checker.ActOnClause(accepted, tt.first(10))
			if first == nil {
				t.Fatalf("first %s clause rejected: %v", tt.name, diagMessages(checker.Diagnostics()))
			}

			accepted = append(accepted, first)

			second := checker.ActOnClause(accepted, tt.first(40))
			if second != nil {
				t.Fatalf("second %s clause accepted, want rejection", tt.name)
			}

			if got := checker.Diagnostics().ErrorCount(); got != 1 {
				t.Fatalf("error count = %d, want 1: %v", got, diagMessages(checker.Diagnostics()))
			}

			d := checker.Diagnostics().Diagnostics()[0]
			if d.Category != diagnostics.CategoryDuplicateClause {
				t.Errorf("category = %v, want duplicate-clause", d.Category)
			}

			if len(d.Related) != 1 {
				t.Fatalf("related notes = %d, want 1", len(d.Related))
			}

			if d.Related[0].Span != first.GetSpan() {
				t.Errorf("note points at %v, want first clause span %v", d.Related[0].Span, first.GetSpan())
			}

			// The accepted list still holds exactly one instance.
			count := 0
			for _, c := range accepted {
				if c.ClauseKind() == first.ClauseKind() {
					count++
				}
			}

			if count != 1 {
				t.Errorf("accepted %s clauses = %d, want 1", tt.name, count)
			}
		})
	}
}

func TestMultiplePrivateClausesAllowed(t *testing.T) {
	checker := newTestChecker(t)

	var accepted []ast.Clause

	for col := 10; col <= 30; col += 10 {
		p := NewParsedClause(ast.DirectiveParallel, ast.ClausePrivate, spanAt(col))
		p.SetVarList([]ast.Expr{varRef("x", types.IntTy)})

		node := checker.ActOnClause(accepted, p)
		if node == nil {
			t.Fatalf("private clause at col %d rejected: %v", col, diagMessages(checker.Diagnostics()))
		}

		accepted = append(accepted, node)
	}

	if got := len(checker.Diagnostics().Diagnostics()); got != 0 {
		t.Errorf("diagnostic count = %d, want 0: %v", got, diagMessages(checker.Diagnostics()))
	}

	if len(accepted) != 3 {
		t.Errorf("accepted clauses = %d, want 3", len(accepted))
	}
}

func TestIfSelfConflictWarning(t *testing.T) {
	checker := newTestChecker(t)

	var accepted []ast.Clause

	selfNode := checker.ActOnClause(accepted, condClause(ast.DirectiveParallel, ast.ClauseSelf, 10))
	if selfNode == nil {
		t.Fatalf("self clause rejected")
	}

	accepted = append(accepted, selfNode)

	ifNode := checker.ActOnClause(accepted, condClause(ast.DirectiveParallel, ast.ClauseIf, 30))
	if ifNode == nil {
		t.Fatalf("if clause rejected")
	}

	accepted = append(accepted, ifNode)

	if got := checker.Diagnostics().WarningCount(); got != 1 {
		t.Fatalf("warning count = %d, want 1: %v", got, diagMessages(checker.Diagnostics()))
	}

	if got := checker.Diagnostics().ErrorCount(); got != 0 {
		t.Fatalf("error count = %d, want 0: %v", got, diagMessages(checker.Diagnostics()))
	}

	d := checker.Diagnostics().Diagnostics()[0]
	if d.Category != diagnostics.CategoryClauseConflict {
		t.Errorf("category = %v, want clause-conflict", d.Category)
	}

	if len(d.Related) != 1 || d.Related[0].Span != selfNode.GetSpan() {
		t.Errorf("note should point at the self clause at %v, got %+v", selfNode.GetSpan(), d.Related)
	}

	if len(accepted) != 2 {
		t.Errorf("accepted clauses = %d, want 2 (both if and self stay)", len(accepted))
	}

	// Symmetric order: if first, then self.
	checker2 := newTestChecker(t)

	var accepted2 []ast.Clause

	ifFirst := checker2.ActOnClause(accepted2, condClause(ast.DirectiveKernels, ast.ClauseIf, 10))
	accepted2 = append(accepted2, ifFirst)

	selfSecond := checker2.ActOnClause(accepted2, condClause(ast.DirectiveKernels, ast.ClauseSelf, 30))
	if selfSecond == nil {
		t.Fatalf("self clause after if rejected")
	}

	if got := checker2.Diagnostics().WarningCount(); got != 1 {
		t.Errorf("warning count = %d, want 1", got)
	}
}

func TestNumGangsArgumentBounds(t *testing.T) {
	tests := []struct {
		name       string
		directive  ast.DirectiveKind
		args       int
		wantErrors int
	}{
		{"parallel one arg", ast.DirectiveParallel, 1, 0},
		{"parallel two args", ast.DirectiveParallel, 2, 0},
		{"parallel three args", ast.DirectiveParallel, 3, 0},
		{"parallel zero args", ast.DirectiveParallel, 0, 1},
		{"parallel four args", ast.DirectiveParallel, 4, 1},
		{"kernels one arg", ast.DirectiveKernels, 1, 0},
		{"kernels two args", ast.DirectiveKernels, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := newTestChecker(t)

			node := checker.ActOnClause(nil, intArgClause(tt.directive, ast.ClauseNumGangs, 1, tt.args))
			if node == nil {
				t.Fatalf("num_gangs node not built, want node even on argument-count error")
			}

			gangs, ok := node.(*ast.NumGangsClause)
			if !ok {
				t.Fatalf("node type = %T, want *ast.NumGangsClause", node)
			}

			if len(gangs.Args) != tt.args {
				t.Errorf("node args = %d, want %d (all parsed expressions kept)", len(gangs.Args), tt.args)
			}

			if got := checker.Diagnostics().ErrorCount(); got != tt.wantErrors {
				t.Errorf("error count = %d, want %d: %v",
					got, tt.wantErrors, diagMessages(checker.Diagnostics()))
			}
		})
	}
}

func TestNumGangsTooManyArgsMessage(t *testing.T) {
	checker := newTestChecker(t)

	checker.ActOnClause(nil, intArgClause(ast.DirectiveParallel, ast.ClauseNumGangs, 1, 4))

	diags := checker.Diagnostics().ByCategory(diagnostics.CategoryArgumentCount)
	if len(diags) != 1 {
		t.Fatalf("argument-count diagnostics = %d, want 1", len(diags))
	}

	msg := diags[0].Message
	if !strings.Contains(msg, "maximum of 3") || !strings.Contains(msg, "4 were provided") {
		t.Errorf("message %q should cite max 3 and actual 4", msg)
	}
}

func TestSingleIntArgClauses(t *testing.T) {
	for _, kind := range []ast.ClauseKind{ast.ClauseNumWorkers, ast.ClauseVectorLength} {
		t.Run(kind.String(), func(t *testing.T) {
			checker := newTestChecker(t)

			node := checker.ActOnClause(nil, intArgClause(ast.DirectiveParallel, kind, 1, 1))
			if node == nil {
				t.Fatalf("%s clause rejected: %v", kind, diagMessages(checker.Diagnostics()))
			}

			if got := node.ClauseKind(); got != kind {
				t.Errorf("ClauseKind() = %v, want %v", got, kind)
			}
		})
	}
}

func TestDefaultInvalidSubKindDropped(t *testing.T) {
	checker := newTestChecker(t)

	p := NewParsedClause(ast.DirectiveParallel, ast.ClauseDefault, spanAt(1))
	p.SetDefaultKind(ast.DefaultInvalid)

	if node := checker.ActOnClause(nil, p); node != nil {
		t.Errorf("default(invalid) = %v, want nil", node)
	}

	if got := len(checker.Diagnostics().Diagnostics()); got != 0 {
		t.Errorf("diagnostic count = %d, want 0 (parser already diagnosed the argument)", got)
	}
}

func TestUnimplementedClauseWarns(t *testing.T) {
	checker := newTestChecker(t)

	node := checker.ActOnClause(nil, NewParsedClause(ast.DirectiveParallel, ast.ClauseAsync, spanAt(1)))
	if node != nil {
		t.Errorf("ActOnClause(async) = %v, want nil", node)
	}

	diags := checker.Diagnostics().Diagnostics()
	if len(diags) != 1 || diags[0].Level != diagnostics.LevelWarning {
		t.Fatalf("diagnostics = %v, want one warning", diagMessages(checker.Diagnostics()))
	}

	if diags[0].Category != diagnostics.CategoryUnimplemented {
		t.Errorf("category = %v, want unimplemented", diags[0].Category)
	}
}

func TestImplementedClauseOnNonComputeFallsThrough(t *testing.T) {
	// 'default' is legal on 'data', but its restrictions are only
	// implemented for compute constructs, so it warns instead of
	// building a node.
	checker := newTestChecker(t)

	node := checker.ActOnClause(nil, defaultClause(ast.DirectiveData, 1))
	if node != nil {
		t.Errorf("default on data = %v, want nil", node)
	}

	diags := checker.Diagnostics().Diagnostics()
	if len(diags) != 1 || diags[0].Category != diagnostics.CategoryUnimplemented {
		t.Fatalf("diagnostics = %v, want one unimplemented warning", diagMessages(checker.Diagnostics()))
	}
}
