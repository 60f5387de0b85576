package position

import (
	"testing"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		pos      Position
		isValid  bool
	}{
		{
			name: "Valid position with filename",
			pos: Position{
				Filename: "kernels.c",
				Line:     12,
				Column:   9,
				Offset:   210,
			},
			isValid:  true,
			expected: "kernels.c:12:9",
		},
		{
			name: "Valid position without filename",
			pos: Position{
				Line:   1,
				Column: 1,
				Offset: 0,
			},
			isValid:  true,
			expected: "1:1",
		},
		{
			name: "Invalid position - zero line",
			pos: Position{
				Line:   0,
				Column: 1,
				Offset: 0,
			},
			isValid: false,
		},
		{
			name: "Invalid position - negative offset",
			pos: Position{
				Line:   1,
				Column: 1,
				Offset: -1,
			},
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.isValid {
				t.Errorf("Position.IsValid() = %v, want %v", got, tt.isValid)
			}

			if tt.isValid {
				if got := tt.pos.String(); got != tt.expected {
					t.Errorf("Position.String() = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestPositionOrdering(t *testing.T) {
	first := Position{Filename: "loop.c", Line: 2, Column: 1, Offset: 20}
	second := Position{Filename: "loop.c", Line: 2, Column: 8, Offset: 27}

	if !first.Before(second) {
		t.Errorf("Position.Before() = false, want true")
	}

	if !second.After(first) {
		t.Errorf("Position.After() = false, want true")
	}

	if first.Before(first) {
		t.Errorf("Position.Before(self) = true, want false")
	}
}

func TestSpan(t *testing.T) {
	start := Position{Filename: "data.c", Line: 3, Column: 5, Offset: 40}
	end := Position{Filename: "data.c", Line: 3, Column: 20, Offset: 55}
	span := NewSpan(start, end)

	if !span.IsValid() {
		t.Fatalf("Span.IsValid() = false, want true")
	}

	if got, want := span.String(), "data.c:3:5-20"; got != want {
		t.Errorf("Span.String() = %v, want %v", got, want)
	}

	inside := Position{Filename: "data.c", Line: 3, Column: 10, Offset: 45}
	if !span.Contains(inside) {
		t.Errorf("Span.Contains(inside) = false, want true")
	}

	if span.Contains(end) {
		t.Errorf("Span.Contains(end) = true, want false (end is exclusive)")
	}
}

func TestSpanMerge(t *testing.T) {
	a := NewSpan(
		Position{Filename: "x.c", Line: 1, Column: 1, Offset: 0},
		Position{Filename: "x.c", Line: 1, Column: 10, Offset: 9},
	)
	b := NewSpan(
		Position{Filename: "x.c", Line: 2, Column: 1, Offset: 12},
		Position{Filename: "x.c", Line: 4, Column: 2, Offset: 60},
	)

	merged := a.Merge(b)
	if merged.Start != a.Start {
		t.Errorf("Merge start = %v, want %v", merged.Start, a.Start)
	}

	if merged.End != b.End {
		t.Errorf("Merge end = %v, want %v", merged.End, b.End)
	}

	if got := a.Merge(Span{}); got != a {
		t.Errorf("Merge with invalid span = %v, want %v", got, a)
	}
}
