package seqpat

import "fmt"

type sequence struct {
	contents []any // Pattern or string
	rw       *Option
}

// Sequence returns a pattern that matches its content patterns one after
// another, each starting where the previous one stopped. The first failing
// content fails the whole sequence without emitting anything. A string
// content is emitted verbatim without consuming input. Nested sequences
// without a rewrite rule are inlined at construction time. Without a
// rewrite option the sequence emits the concatenated content output;
// Sequence supports Replace and Format.
func Sequence(contents ...any) (Pattern, error) {
	var opts []Option
	var cs []any
	for i, c := range contents {
		switch c := c.(type) {
		case Option:
			opts = append(opts, c)
		case *sequence:
			if c.rw == nil {
				cs = append(cs, c.contents...)
			} else {
				cs = append(cs, c)
			}
		case Pattern:
			cs = append(cs, c)
		case string:
			cs = append(cs, c)
		default:
			return nil, fmt.Errorf("Sequence: content %d is %T: %w", i, c, ErrBadContent)
		}
	}
	rw, _, err := pickOptions("Sequence", opts, false, optReplace, optFormat)
	if err != nil {
		return nil, err
	}
	return &sequence{contents: cs, rw: rw}, nil
}

func (s *sequence) Parse(seq []string, row int) ([]any, int, bool) {
	var out []any
	for _, c := range s.contents {
		switch c := c.(type) {
		case string:
			out = append(out, c)
		case Pattern:
			sub, next, ok := c.Parse(seq, row)
			if !ok {
				return nil, 0, false
			}
			if next < row {
				panic("pattern moved backwards")
			}
			out = append(out, sub...)
			row = next
		}
	}
	if s.rw != nil {
		return s.rw.rewrite(out), row, true
	}
	return out, row, true
}

type choice struct {
	alts []Pattern
}

// Choice returns a pattern that tries its alternatives in order and behaves
// like the first one that matches. There is no backtracking into later
// alternatives once one succeeded. Nested choices are inlined at
// construction time. Choice has no rewrite rule of its own, each
// alternative's output is passed through.
func Choice(alts ...Pattern) (Pattern, error) {
	var as []Pattern
	for i, a := range alts {
		switch a := a.(type) {
		case *choice:
			as = append(as, a.alts...)
		case nil:
			return nil, fmt.Errorf("Choice: alternative %d is nil: %w", i, ErrBadContent)
		default:
			as = append(as, a)
		}
	}
	return &choice{alts: as}, nil
}

func (c *choice) Parse(seq []string, row int) ([]any, int, bool) {
	for _, a := range c.alts {
		if out, next, ok := a.Parse(seq, row); ok {
			return out, next, true
		}
	}
	return nil, 0, false
}
