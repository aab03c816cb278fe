package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	tests := []struct {
		name string
		from Position
		text string
		want Position
	}{
		{"empty", Start(), "", Position{Index: 0, Line: 1, Column: 1}},
		{"ascii", Start(), "12.5", Position{Index: 4, Line: 1, Column: 5}},
		{"multibyte", Start(), "√x", Position{Index: 4, Line: 1, Column: 3}},
		{"newline resets column", Position{Index: 3, Line: 1, Column: 4}, "\n", Position{Index: 4, Line: 2, Column: 1}},
		{"text after newline", Start(), "ab\ncd", Position{Index: 5, Line: 2, Column: 3}},
		{"several newlines", Start(), "\n\n x", Position{Index: 4, Line: 3, Column: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Advance(tt.text)
			if got != tt.want {
				t.Fatalf("Advance(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestPositionAdvanceIsValue(t *testing.T) {
	p := Start()
	_ = p.Advance("abc")
	if p != Start() {
		t.Fatalf("Advance mutated receiver: %+v", p)
	}
}

func TestLine(t *testing.T) {
	text := "a + b\nc\n\nd"
	cases := map[uint32]string{0: "", 1: "a + b", 2: "c", 3: "", 4: "d", 5: ""}
	for n, want := range cases {
		if got := Line(text, n); got != want {
			t.Errorf("Line(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNormalizeInput(t *testing.T) {
	got, changed := NormalizeInput("\uFEFF1 +\r\n2")
	if got != "1 +\n2" || !changed {
		t.Fatalf("NormalizeInput = %q, %v", got, changed)
	}
	got, changed = NormalizeInput("x")
	if got != "x" || changed {
		t.Fatalf("NormalizeInput(plain) = %q, %v", got, changed)
	}
}
