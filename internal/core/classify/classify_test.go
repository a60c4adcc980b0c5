package classify

import (
	"testing"

	"bbcenglish/internal/core/rulepack"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	p, err := rulepack.Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	return New(p)
}

func TestState_Toggle(t *testing.T) {
	if Outside.Toggle() != Inside || Inside.Toggle() != Outside {
		t.Fatalf("toggle is not an involution")
	}
	if Outside.String() != "outside" || Inside.String() != "inside" {
		t.Fatalf("unexpected names %q %q", Outside, Inside)
	}
}

func TestClassify_Kinds(t *testing.T) {
	c := newClassifier(t)
	cases := []struct {
		name    string
		body    string
		kind    Kind
		prefix  string
		content string
	}{
		{"line comment", "// the color", Comment, "// ", "the color"},
		{"doc comment", "    /// the color", Comment, "    /// ", "the color"},
		{"inner doc", "//! crate color", Comment, "//! ", "crate color"},
		{"no space", "//color", Comment, "//", "color"},
		{"empty comment", "//", Comment, "//", ""},
		{"code", "let color = 1;", Code, "", ""},
		{"trailing comment is code", "x += 1; // color", Code, "", ""},
		{"block comment", "/* color */", Code, "", ""},
		{"call", "// see optimize(x)", Example, "", ""},
		{"path", "/// Color::RED", Example, "", ""},
		{"method", "// v.color()", Example, "", ""},
		{"let", "/// let color = 2", Example, "", ""},
		{"closure", "// |x| x", Example, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, st := c.Classify(tc.body, Outside)
			if st != Outside {
				t.Fatalf("state changed to %v", st)
			}
			if got.Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", got.Kind, tc.kind)
			}
			if got.Prefix != tc.prefix || got.Content != tc.content {
				t.Fatalf("split = %q|%q, want %q|%q", got.Prefix, got.Content, tc.prefix, tc.content)
			}
			if tc.kind == Example && got.Heuristic == "" {
				t.Fatalf("example without heuristic name")
			}
		})
	}
}

func TestClassify_FenceStateMachine(t *testing.T) {
	c := newClassifier(t)
	lines := []struct {
		body string
		kind Kind
		st   State
	}{
		{"/// Example:", Comment, Outside},
		{"/// ```rust", Fence, Inside},
		{"/// the color", Fenced, Inside},
		{"let s = \"```\";", Fence, Outside},
		{"// color", Comment, Outside},
		{"/// ```", Fence, Inside},
	}
	st := Outside
	for i, l := range lines {
		var got Line
		got, st = c.Classify(l.body, st)
		if got.Kind != l.kind || st != l.st {
			t.Fatalf("line %d %q: got %v/%v, want %v/%v", i+1, l.body, got.Kind, st, l.kind, l.st)
		}
	}
	// unterminated fence is not an error; state simply stays inside
	if st != Inside {
		t.Fatalf("final state = %v", st)
	}
}

func TestKind_String(t *testing.T) {
	if Comment.String() != "comment" || Kind(42).String() != "unknown" {
		t.Fatalf("kind names wrong")
	}
}
