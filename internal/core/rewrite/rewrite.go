// Package rewrite applies the rule table to the content of comment lines and runs the
// per-file line loop shared by the batch fixer and the api
package rewrite

import (
	"fmt"
	"strings"

	"bbcenglish/internal/core/classify"
	"bbcenglish/internal/core/rulepack"
	pstrings "bbcenglish/internal/platform/strings"
)

// Application records one rule firing on one piece of content. Count is the number of
// occurrences replaced; From is the first of them
type Application struct {
	Label string
	From  string
	To    string
	Count int
}

// Change is one reported rule firing on one line
type Change struct {
	Path  string `json:"path"`
	Line  int    `json:"line"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// String renders the change as "path:line: label | 'from' → 'to'"
func (c Change) String() string {
	return fmt.Sprintf("%s:%d: %s | '%s' → '%s'", c.Path, c.Line, c.Label, c.From, c.To)
}

// Rewriter pairs a rule table with the classifier built from the same pack
type Rewriter struct {
	rules []rulepack.Rule
	cls   *classify.Classifier
}

// New builds a Rewriter for p
func New(p *rulepack.Pack) *Rewriter {
	return &Rewriter{rules: p.Rules, cls: classify.New(p)}
}

// Rewrite applies every rule, in table order, to content
func (rw *Rewriter) Rewrite(content string) (string, []Application) {
	var apps []Application
	for _, r := range rw.rules {
		out, first, n := r.Apply(content)
		if n == 0 {
			continue
		}
		content = out
		apps = append(apps, Application{Label: r.Label, From: first, To: r.British, Count: n})
	}
	return content, apps
}

// Line classifies raw (which may end in "\n" or "\r\n") and rewrites it when it is a
// comment. Lines that are not rewritten are returned byte-identical
func (rw *Rewriter) Line(raw string, st classify.State) (string, []Application, classify.State) {
	body, term := pstrings.CutTerminator(raw)
	cl, next := rw.cls.Classify(body, st)
	if cl.Kind != classify.Comment {
		return raw, nil, next
	}
	content, apps := rw.Rewrite(cl.Content)
	if content == cl.Content {
		return raw, nil, next
	}
	return cl.Prefix + content + term, apps, next
}

// Result is the outcome of rewriting one document
type Result struct {
	Text    string
	Changes []Change
	Lines   int
}

// Changed reports whether any rule fired
func (r Result) Changed() bool { return len(r.Changes) > 0 }

// Document rewrites every line of text, threading block state from the first line to
// the last. path only labels the changes
func (rw *Rewriter) Document(path, text string) Result {
	lines := pstrings.SplitLines(text)
	var (
		b   strings.Builder
		res = Result{Lines: len(lines)}
		st  = classify.Outside
	)
	b.Grow(len(text))
	for i, raw := range lines {
		var (
			out  string
			apps []Application
		)
		out, apps, st = rw.Line(raw, st)
		b.WriteString(out)
		for _, a := range apps {
			res.Changes = append(res.Changes, Change{
				Path:  path,
				Line:  i + 1,
				Label: a.Label,
				From:  a.From,
				To:    a.To,
				Count: a.Count,
			})
		}
	}
	res.Text = b.String()
	return res
}
