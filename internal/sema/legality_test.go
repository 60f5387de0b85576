package sema

import (
	"testing"

	"github.com/oacc-lang/oacc/internal/ast"
	"github.com/oacc-lang/oacc/internal/diagnostics"
)

func TestClauseAppliesToDirective(t *testing.T) {
	tests := []struct {
		name      string
		directive ast.DirectiveKind
		clause    ast.ClauseKind
		applies   bool
	}{
		{"default on parallel", ast.DirectiveParallel, ast.ClauseDefault, true},
		{"default on data", ast.DirectiveData, ast.ClauseDefault, true},
		{"default on update", ast.DirectiveUpdate, ast.ClauseDefault, false},
		{"if on enter data", ast.DirectiveEnterData, ast.ClauseIf, true},
		{"if on wait", ast.DirectiveWait, ast.ClauseIf, true},
		{"if on loop", ast.DirectiveLoop, ast.ClauseIf, false},
		{"self on update", ast.DirectiveUpdate, ast.ClauseSelf, true},
		{"self on data", ast.DirectiveData, ast.ClauseSelf, false},
		{"num_gangs on parallel", ast.DirectiveParallel, ast.ClauseNumGangs, true},
		{"num_gangs on serial", ast.DirectiveSerial, ast.ClauseNumGangs, false},
		{"num_workers on kernels loop", ast.DirectiveKernelsLoop, ast.ClauseNumWorkers, true},
		{"vector_length on serial loop", ast.DirectiveSerialLoop, ast.ClauseVectorLength, false},
		{"private on loop", ast.DirectiveLoop, ast.ClausePrivate, true},
		{"private on kernels", ast.DirectiveKernels, ast.ClausePrivate, false},
		{"unimplemented clause defaults to applies", ast.DirectiveSet, ast.ClauseAsync, true},
		{"reduction defaults to applies", ast.DirectiveParallel, ast.ClauseReduction, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clauseAppliesToDirective(tt.directive, tt.clause); got != tt.applies {
				t.Errorf("clauseAppliesToDirective(%s, %s) = %v, want %v",
					tt.directive, tt.clause, got, tt.applies)
			}
		})
	}
}

func TestClauseAppliesIsDeterministic(t *testing.T) {
	directives := []ast.DirectiveKind{
		ast.DirectiveInvalid, ast.DirectiveParallel, ast.DirectiveSerial,
		ast.DirectiveKernels, ast.DirectiveData, ast.DirectiveEnterData,
		ast.DirectiveExitData, ast.DirectiveHostData, ast.DirectiveLoop,
		ast.DirectiveParallelLoop, ast.DirectiveSerialLoop, ast.DirectiveKernelsLoop,
		ast.DirectiveUpdate, ast.DirectiveWait, ast.DirectiveInit,
		ast.DirectiveShutdown, ast.DirectiveSet,
	}
	clauses := []ast.ClauseKind{
		ast.ClauseInvalid, ast.ClauseDefault, ast.ClauseIf, ast.ClauseSelf,
		ast.ClauseNumGangs, ast.ClauseNumWorkers, ast.ClauseVectorLength,
		ast.ClausePrivate, ast.ClauseCopy, ast.ClauseAsync, ast.ClauseReduction,
	}

	for _, d := range directives {
		for _, cl := range clauses {
			first := clauseAppliesToDirective(d, cl)
			second := clauseAppliesToDirective(d, cl)

			if first != second {
				t.Errorf("clauseAppliesToDirective(%s, %s) not deterministic: %v then %v",
					d, cl, first, second)
			}
		}
	}
}

func TestConstructAppertainment(t *testing.T) {
	tests := []struct {
		name      string
		directive ast.DirectiveKind
		isStmt    bool
		wantErr   bool
	}{
		{"parallel as statement", ast.DirectiveParallel, true, false},
		{"serial as statement", ast.DirectiveSerial, true, false},
		{"kernels as statement", ast.DirectiveKernels, true, false},
		{"parallel as declaration", ast.DirectiveParallel, false, true},
		{"kernels as declaration", ast.DirectiveKernels, false, true},
		{"update as declaration is silently accepted", ast.DirectiveUpdate, false, false},
		{"invalid kind is silently accepted", ast.DirectiveInvalid, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := newTestChecker(t)

			var err error
			if tt.isStmt {
				err = checker.ActOnStartStmtDirective(tt.directive, spanAt(1))
			} else {
				err = checker.ActOnStartDeclDirective(tt.directive, spanAt(1))
			}

			if (err != nil) != tt.wantErr {
				t.Fatalf("appertainment error = %v, wantErr %v", err, tt.wantErr)
			}

			wantDiags := 0
			if tt.wantErr {
				wantDiags = 1
			}

			if got := len(checker.Diagnostics().Diagnostics()); got != wantDiags {
				t.Errorf("diagnostic count = %d, want %d: %v",
					got, wantDiags, diagMessages(checker.Diagnostics()))
			}

			if tt.wantErr {
				d := checker.Diagnostics().Diagnostics()[0]
				if d.Category != diagnostics.CategoryAppertainment {
					t.Errorf("diagnostic category = %v, want appertainment", d.Category)
				}
			}
		})
	}
}
