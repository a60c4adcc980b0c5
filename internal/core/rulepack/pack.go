// Package rulepack loads and compiles the spelling rule table from the embedded rules.json.
// Each family pair is expanded into a lowercase and a capitalised rule, in file order,
// and the pack also carries the comment pattern, fence marker and code heuristics the
// classifier runs with
package rulepack

import (
	_ "embed"
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/platform/validate"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed rules.json
var embedded []byte

// Version is the only rules.json version this package understands
const Version = 1

// File is the JSON form of a rule pack. Fragments merged by the rulepack tool use the same shape
type File struct {
	Version        int         `json:"version" validate:"eq=1"`
	Meta           Meta        `json:"meta"`
	FenceMarker    string      `json:"fence_marker" validate:"required"`
	CommentPattern string      `json:"comment_pattern" validate:"required,regexp"`
	CodeHeuristics []Heuristic `json:"code_heuristics" validate:"dive"`
	Families       []Family    `json:"families" validate:"required,min=1,dive"`
}

// Meta describes a pack for humans and the api
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Heuristic is a named "looks like code" pattern matched against a whole line
type Heuristic struct {
	Name    string `json:"name" validate:"required"`
	Pattern string `json:"pattern" validate:"required,regexp"`
}

// Family groups word pairs under one report label, e.g. "-or to -our"
type Family struct {
	Label string `json:"label" validate:"required"`
	Words []Word `json:"words" validate:"required,min=1,dive"`
}

// Word is one lowercase american/british pair. NotFollowedBy, when set, is a pattern
// that vetoes a match if it matches the text right after it
type Word struct {
	US            string `json:"us" validate:"required,lowercase,alpha"`
	UK            string `json:"uk" validate:"required,lowercase,alpha,nefield=US"`
	NotFollowedBy string `json:"not_followed_by,omitempty" validate:"omitempty,regexp"`
}

// Rule is one compiled, case-specific conversion
type Rule struct {
	Label    string
	American string
	British  string

	re    *regexp.Regexp
	guard *regexp.Regexp
}

// Pattern returns the word-bounded pattern the rule matches
func (r Rule) Pattern() string { return r.re.String() }

// Guarded reports whether matches can be vetoed by trailing context
func (r Rule) Guarded() bool { return r.guard != nil }

// Apply replaces every unvetoed match of the rule in s. It returns the new text,
// the first replaced match and the number of replacements
func (r Rule) Apply(s string) (out, first string, n int) {
	locs := r.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s, "", 0
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		if !wordBounded(s, loc[0], loc[1]) {
			continue
		}
		if r.guard != nil && r.guard.MatchString(s[loc[1]:]) {
			continue
		}
		if n == 0 {
			first = s[loc[0]:loc[1]]
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(r.British)
		last = loc[1]
		n++
	}
	if n == 0 {
		return s, "", 0
	}
	b.WriteString(s[last:])
	return b.String(), first, n
}

// wordBounded reports whether s[start:end] is a whole word. RE2's \b only knows ASCII
// word characters, so a match next to a letter like 'é' is rejected here
func wordBounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NamedPattern is a compiled heuristic
type NamedPattern struct {
	Name string
	Re   *regexp.Regexp
}

// Pack is a compiled rule pack
type Pack struct {
	Version     int
	Meta        Meta
	FenceMarker string
	Comment     *regexp.Regexp
	Heuristics  []NamedPattern
	Rules       []Rule

	byAmerican map[string]int
}

// Lookup returns the rule converting the exact (case-sensitive) american word
func (p *Pack) Lookup(american string) (Rule, bool) {
	i, ok := p.byAmerican[american]
	if !ok {
		return Rule{}, false
	}
	return p.Rules[i], true
}

// Load returns the compiled pack from the embedded rules.json
func Load() (*Pack, error) { return Parse(embedded) }

// Embedded returns a copy of the embedded rules.json
func Embedded() []byte { return append([]byte(nil), embedded...) }

// LoadFile compiles the pack stored at path
func LoadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.WithOp(perr.IOf(err, "read rule pack %s", path), "rulepack.LoadFile")
	}
	return Parse(b)
}

// Parse decodes and compiles a rule pack
func Parse(data []byte) (*Pack, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, perr.WithOp(perr.JSONErrf("parse rule pack: %v", err), "rulepack.Parse")
	}
	return Compile(f)
}

// Compile validates f and builds the rule table. Beyond struct validation it rejects
// duplicate american words, a comment pattern without exactly two groups, and any
// british spelling that some american pattern would match again
func Compile(f File) (*Pack, error) {
	if err := validate.Struct(f); err != nil {
		return nil, perr.WithOp(err, "rulepack.Compile")
	}

	comment, err := regexp.Compile(f.CommentPattern)
	if err != nil {
		return nil, invalid("comment_pattern: %v", err)
	}
	if comment.NumSubexp() != 2 {
		return nil, invalid("comment_pattern must have 2 capture groups (prefix, content), has %d", comment.NumSubexp())
	}

	p := &Pack{
		Version:     f.Version,
		Meta:        f.Meta,
		FenceMarker: f.FenceMarker,
		Comment:     comment,
		byAmerican:  make(map[string]int, 256),
	}

	for _, h := range f.CodeHeuristics {
		p.Heuristics = append(p.Heuristics, NamedPattern{Name: h.Name, Re: regexp.MustCompile(h.Pattern)})
	}

	title := cases.Title(language.BritishEnglish)
	for _, fam := range f.Families {
		for _, w := range fam.Words {
			var guard *regexp.Regexp
			if w.NotFollowedBy != "" {
				guard = regexp.MustCompile(`^(?:` + w.NotFollowedBy + `)`)
			}
			for _, pair := range [][2]string{
				{w.US, w.UK},
				{title.String(w.US), title.String(w.UK)},
			} {
				if _, dup := p.byAmerican[pair[0]]; dup {
					return nil, invalid("duplicate american word %q", pair[0])
				}
				p.byAmerican[pair[0]] = len(p.Rules)
				p.Rules = append(p.Rules, Rule{
					Label:    fam.Label,
					American: pair[0],
					British:  pair[1],
					re:       regexp.MustCompile(`\b` + regexp.QuoteMeta(pair[0]) + `\b`),
					guard:    guard,
				})
			}
		}
	}

	// a replacement that another rule matches would make a second run change the file again
	for _, r := range p.Rules {
		for _, q := range p.Rules {
			if q.re.MatchString(r.British) {
				return nil, invalid("british %q (from %q) is matched again by %q", r.British, r.American, q.American)
			}
		}
	}
	return p, nil
}

func invalid(format string, a ...any) error {
	return perr.WithOp(perr.Validationf(format, a...), "rulepack.Compile")
}
