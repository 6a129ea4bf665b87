package seqpat

import "slices"

// SplitBy splits seq into the segments between delimiter matches. The
// delimiter is searched by trying delim at every row from the current
// segment start on. delims carries the delimiter's emitted output for every
// boundary, in order, so callers that need the delimiters interleave the
// two results; all others ignore delims. On success
// len(segs) == len(delims)+1 always holds: consecutive delimiters and
// delimiters at the very start or end yield empty segments, and a sequence
// ending in a delimiter gets a trailing empty segment. A delimiter that
// matches without consuming at least one line aborts with a
// *DelimiterError.
func SplitBy(delim Pattern, seq []string) (segs [][]string, delims [][]any, err error) {
	row := 0
	for row < len(seq) {
		found := -1
		var out []any
		var next int
		for i := row; i < len(seq); i++ {
			if o, n, ok := delim.Parse(seq, i); ok {
				found, out, next = i, o, n
				break
			}
		}
		if found < 0 {
			segs = append(segs, slices.Clone(seq[row:]))
			return segs, delims, nil
		}
		if next == found {
			return nil, nil, &DelimiterError{Row: found}
		}
		segs = append(segs, slices.Clone(seq[row:found]))
		delims = append(delims, out)
		row = next
	}
	segs = append(segs, []string{})
	return segs, delims, nil
}
