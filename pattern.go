package seqpat

// Pattern is the common contract of all matcher nodes. Patterns are
// immutable after construction and may be shared between any number of
// concurrent Parse, Gsub and SplitBy calls.
type Pattern interface {
	// Parse attempts to match at row of seq. On success it returns the
	// emitted output items, the row just after the match and true. The
	// returned row is never less than the given one; equality means a
	// zero-width match. On failure ok is false and the other results are
	// meaningless.
	Parse(seq []string, row int) (out []any, next int, ok bool)
}

type literal struct {
	text string
	rw   *Option
}

// Literal returns a pattern that matches one line equal to text, without
// trimming. It emits the matched line, or the Replace items if that option
// is given. Literal supports no other rewrite rule.
func Literal(text string, opts ...Option) (Pattern, error) {
	rw, _, err := pickOptions("Literal", opts, false, optReplace)
	if err != nil {
		return nil, err
	}
	return &literal{text: text, rw: rw}, nil
}

func (l *literal) Parse(seq []string, row int) ([]any, int, bool) {
	if row >= len(seq) || seq[row] != l.text {
		return nil, 0, false
	}
	if l.rw != nil {
		return l.rw.items, row + 1, true
	}
	return []any{seq[row]}, row + 1, true
}
