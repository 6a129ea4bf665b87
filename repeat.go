package seqpat

import "fmt"

// Unlimited as max makes a Repeat match until its content fails.
const Unlimited = -1

type repeat struct {
	content  Pattern
	min, max int
	sep      *string
	rw       *Option
}

// Repeat returns a pattern that matches content greedily up to max times,
// or until content fails when max is Unlimited, and requires at least min
// successes. Construction fails for min < 0, max < min, min == max == 0,
// and when content is itself a Repeat; compose nested repetitions through
// an intermediate Sequence or Choice. With the Separator option the
// separator string is emitted between the outputs of consecutive
// repetitions, never before the first or after the last. Without a rewrite
// option Repeat emits the accumulated output including separators; it
// supports Replace and Format.
func Repeat(content Pattern, min, max int, opts ...Option) (Pattern, error) {
	if content == nil {
		return nil, fmt.Errorf("Repeat: nil content: %w", ErrBadContent)
	}
	if _, ok := content.(*repeat); ok {
		return nil, fmt.Errorf("Repeat: %w", ErrNestedRepeat)
	}
	switch {
	case min < 0:
		return nil, fmt.Errorf("Repeat: min %d: %w", min, ErrRepeatBounds)
	case max < Unlimited:
		return nil, fmt.Errorf("Repeat: max %d: %w", max, ErrRepeatBounds)
	case max != Unlimited && max < min:
		return nil, fmt.Errorf("Repeat: max %d < min %d: %w", max, min, ErrRepeatBounds)
	case min == 0 && max == 0:
		return nil, fmt.Errorf("Repeat: zero repetitions: %w", ErrRepeatBounds)
	}
	rw, sep, err := pickOptions("Repeat", opts, true, optReplace, optFormat)
	if err != nil {
		return nil, err
	}
	return &repeat{content: content, min: min, max: max, sep: sep, rw: rw}, nil
}

func (r *repeat) Parse(seq []string, row int) ([]any, int, bool) {
	count := 0
	var out []any
	for r.max == Unlimited || count < r.max {
		sub, next, ok := r.content.Parse(seq, row)
		if !ok {
			break
		}
		if next < row {
			panic("pattern moved backwards")
		}
		if r.sep != nil && count >= 1 {
			out = append(out, *r.sep)
		}
		consumed := next > row
		out = append(out, sub...)
		row = next
		count++
		// Zero-width matches may only satisfy the floor, then the loop
		// must stop or it would never terminate.
		if !consumed && count >= r.min {
			break
		}
	}
	if count < r.min {
		return nil, 0, false
	}
	if r.rw != nil {
		return r.rw.rewrite(out), row, true
	}
	return out, row, true
}
