package seqpat

import (
	"fmt"
	"regexp"
)

// Match describes one successful Regex line match. It is only valid inside
// the formatting callback it is passed to.
type Match struct {
	text string
	re   *regexp.Regexp
	loc  []int
}

// Text returns the full text of the matched line, including any trailing
// part the expression did not consume.
func (m *Match) Text() string { return m.text }

// GroupCount returns the number of capture groups of the expression.
func (m *Match) GroupCount() int { return m.re.NumSubexp() }

// Lookup returns the text of capture group i and whether the group took
// part in the match. Group 0 is the complete match.
func (m *Match) Lookup(i int) (string, bool) {
	if i < 0 || i > m.re.NumSubexp() {
		return "", false
	}
	if s := m.loc[2*i]; s >= 0 {
		return m.text[s:m.loc[2*i+1]], true
	}
	return "", false
}

// Group returns the text of capture group i. It panics when i is outside
// the expression's groups or when the group did not take part in the match.
func (m *Match) Group(i int) string {
	if i < 0 || i > m.re.NumSubexp() {
		panic(fmt.Sprintf("no group %d in `%s`", i, m.re))
	}
	s, ok := m.Lookup(i)
	if !ok {
		panic(fmt.Sprintf("group %d of `%s` did not match", i, m.re))
	}
	return s
}

// GroupFunc gives formatting callbacks access to the capture groups of a
// match, see FormatGroups. It fails like Match.Group.
type GroupFunc func(i int) string

type regex struct {
	re *regexp.Regexp
	rw *Option
}

// Regex returns a pattern that matches one line whose prefix matches the
// regular expression expr. The expression is anchored at column 0 but need
// not consume the whole line; use $ to require that. Flags go inline into
// expr, e.g. `(?i)`. Without a rewrite option the pattern emits the matched
// line; Regex supports Replace, FormatText, FormatMatch and FormatGroups.
func Regex(expr string, opts ...Option) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("Regex: %w", err)
	}
	rw, _, err := pickOptions("Regex", opts, false,
		optReplace, optFormatText, optFormatMatch, optFormatGroups)
	if err != nil {
		return nil, err
	}
	return &regex{re: re, rw: rw}, nil
}

func (r *regex) Parse(seq []string, row int) ([]any, int, bool) {
	if row >= len(seq) {
		return nil, 0, false
	}
	line := seq[row]
	// leftmost match semantics: loc starts at 0 iff any match does
	loc := r.re.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return nil, 0, false
	}
	if r.rw == nil {
		return []any{line}, row + 1, true
	}
	switch r.rw.kind {
	case optReplace:
		return r.rw.items, row + 1, true
	case optFormatText:
		return r.rw.fmtText(line), row + 1, true
	case optFormatMatch:
		return r.rw.fmtMatch(&Match{text: line, re: r.re, loc: loc}), row + 1, true
	case optFormatGroups:
		m := &Match{text: line, re: r.re, loc: loc}
		return r.rw.fmtGroups(m.Group), row + 1, true
	}
	panic("unreachable code")
}
