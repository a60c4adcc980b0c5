package validate

import (
	"strings"
	"testing"

	perr "bbcenglish/internal/platform/errors"
)

type sample struct {
	Name    string   `json:"name" validate:"required,min=2"`
	Pattern string   `json:"pattern" validate:"omitempty,regexp"`
	Exts    []string `json:"exts" validate:"dive,ext"`
}

func TestStruct_OK(t *testing.T) {
	in := sample{Name: "colour", Pattern: `\bcolor\b`, Exts: []string{".rs", ".go"}}
	if err := Struct(in); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestStruct_Failures(t *testing.T) {
	cases := []struct {
		name  string
		in    sample
		field string
		msg   string
	}{
		{"required", sample{}, "name", "name is a required field"},
		{"short min", sample{Name: "a"}, "name", "name must be at least 2"},
		{"bad regexp", sample{Name: "ok", Pattern: "(?!x)"}, "pattern", "pattern must be a valid regular expression"},
		{"bad ext", sample{Name: "ok", Exts: []string{"rs"}}, "exts[0]", "must be a file suffix"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if perr.CodeOf(err) != perr.ErrorCodeValidation {
				t.Fatalf("code = %v, want validation (%v)", perr.CodeOf(err), err)
			}
			w := perr.WireFrom(err)
			if w.Field != c.field {
				t.Fatalf("field = %q, want %q", w.Field, c.field)
			}
			if !strings.Contains(w.Message, c.msg) {
				t.Fatalf("message %q does not contain %q", w.Message, c.msg)
			}
		})
	}
}

func TestVar(t *testing.T) {
	if err := Var(".rs", "ext"); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := Var("./", "ext"); perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFieldAndMessage_NonValidatorError(t *testing.T) {
	f, m := FieldAndMessage(perr.New(perr.ErrorCodeIO, "boom"))
	if f != "" || m != "boom" {
		t.Fatalf("got %q %q", f, m)
	}
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should be empty")
	}
}
