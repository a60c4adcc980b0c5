// Package classify decides what a single source line is: a fence toggle, part of a
// fenced example, a comment that looks like code, a comment to rewrite, or plain code.
// Block state is an explicit value passed in and returned, one per file
package classify

import (
	"regexp"
	"strings"

	"bbcenglish/internal/core/rulepack"
)

// State is the fenced-example state carried across the lines of one file
type State uint8

const (
	// Outside is the initial state
	Outside State = iota
	// Inside means a fence marker opened an example that has not been closed
	Inside
)

// Toggle flips the state
func (s State) Toggle() State {
	if s == Inside {
		return Outside
	}
	return Inside
}

func (s State) String() string {
	if s == Inside {
		return "inside"
	}
	return "outside"
}

// Kind is the classification of one line
type Kind uint8

const (
	// Code is any line that is not a single-line comment
	Code Kind = iota
	// Fence is a line containing the fence marker; it flips State
	Fence
	// Fenced is a line between fence markers
	Fenced
	// Example is a comment line that matches a code heuristic
	Example
	// Comment is a comment line whose content may be rewritten
	Comment
)

var kindNames = [...]string{"code", "fence", "fenced", "example", "comment"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Line is the result of classifying one line body (terminator excluded)
type Line struct {
	Kind Kind
	// Prefix and Content are set only for Comment lines
	Prefix  string
	Content string
	// Heuristic names the code pattern that matched an Example line
	Heuristic string
}

// Classifier holds the compiled patterns from a rule pack
type Classifier struct {
	fence      string
	comment    *regexp.Regexp
	heuristics []rulepack.NamedPattern
}

// New builds a Classifier from the pack's fence marker, comment pattern and heuristics
func New(p *rulepack.Pack) *Classifier {
	return &Classifier{fence: p.FenceMarker, comment: p.Comment, heuristics: p.Heuristics}
}

// Classify classifies body given the state before it and returns the state after it.
// Fence markers win over everything, then the fenced state, then code heuristics,
// and only then the comment pattern
func (c *Classifier) Classify(body string, st State) (Line, State) {
	if strings.Contains(body, c.fence) {
		return Line{Kind: Fence}, st.Toggle()
	}
	if st == Inside {
		return Line{Kind: Fenced}, st
	}
	for _, h := range c.heuristics {
		if h.Re.MatchString(body) {
			return Line{Kind: Example, Heuristic: h.Name}, st
		}
	}
	m := c.comment.FindStringSubmatch(body)
	if m == nil {
		return Line{Kind: Code}, st
	}
	return Line{Kind: Comment, Prefix: m[1], Content: m[2]}, st
}
