package seqpat

import "fmt"

// Unmatched selects how Gsub treats lines its pattern does not match.
type Unmatched int

const (
	// KeepUnmatched copies unmatched lines verbatim into the output.
	KeepUnmatched Unmatched = iota
	// DropUnmatched omits unmatched lines from the output.
	DropUnmatched
	// FailUnmatched aborts with an *UnmatchedError on the first unmatched
	// line.
	FailUnmatched
)

// Gsub applies p at every row of seq and returns the rewritten sequence.
// Where p matches, its output items replace the matched lines and the scan
// continues after the match; a zero-width match still advances the scan by
// one row. Where p does not match, mode decides between copying the line,
// dropping it and aborting. In FailUnmatched mode no partial result is
// returned.
func Gsub(p Pattern, seq []string, mode Unmatched) ([]any, error) {
	switch mode {
	case KeepUnmatched, DropUnmatched, FailUnmatched:
	default:
		return nil, fmt.Errorf("Gsub: mode %d: %w", int(mode), ErrBadMode)
	}
	out := []any{}
	row := 0
	for row < len(seq) {
		sub, next, ok := p.Parse(seq, row)
		if !ok {
			switch mode {
			case FailUnmatched:
				return nil, &UnmatchedError{Row: row}
			case KeepUnmatched:
				out = append(out, seq[row])
			}
			row++
			continue
		}
		if next < row {
			panic("pattern moved backwards")
		}
		out = append(out, sub...)
		if next == row {
			row++ // keep moving on zero-width matches
		} else {
			row = next
		}
	}
	return out, nil
}
