// Package query compiles raw search queries into line matchers.
//
// A query wrapped in slashes (/pattern/) is a regular expression in RE2
// syntax; anything else is a case-sensitive literal substring.
package query

import (
	"regexp"
	"strings"

	"github.com/harrison/mindexr/internal/models"
)

// Kind distinguishes the two matcher variants.
type Kind int

const (
	// Literal matches lines containing the query text.
	Literal Kind = iota
	// Pattern matches lines satisfying a regular expression.
	Pattern
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Pattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Matcher is a compiled query. It is immutable and reused across every file
// of a directory walk.
type Matcher struct {
	kind    Kind
	literal string
	re      *regexp.Regexp
}

// Compile trims raw and builds a Matcher. It fails with EmptyQuery when
// nothing remains after trimming, and with InvalidPattern when a /.../ query
// does not compile.
func Compile(raw string) (*Matcher, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, models.NewEmptyQuery()
	}

	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, "/") && strings.HasSuffix(trimmed, "/") {
		pattern := trimmed[1 : len(trimmed)-1]
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, models.NewInvalidPattern(pattern, err)
		}
		return &Matcher{kind: Pattern, re: re}, nil
	}

	return &Matcher{kind: Literal, literal: trimmed}, nil
}

// Match reports whether line satisfies the query.
func (m *Matcher) Match(line string) bool {
	switch m.kind {
	case Pattern:
		return m.re.MatchString(line)
	default:
		return strings.Contains(line, m.literal)
	}
}

// Kind returns the matcher variant.
func (m *Matcher) Kind() Kind {
	return m.kind
}

// String returns the literal text or the regular expression source.
func (m *Matcher) String() string {
	if m.kind == Pattern {
		return m.re.String()
	}
	return m.literal
}
