package seqpat

import (
	"errors"
	"fmt"
)

// Construction errors. Pattern constructors report violations of their
// invariants with errors wrapping one of these sentinels.
var (
	// ErrRewriteConflict indicates more than one rewrite option on one node.
	ErrRewriteConflict = errors.New("conflicting rewrite options")
	// ErrBadOption indicates an option the node kind does not support.
	ErrBadOption = errors.New("option not applicable")
	// ErrBadContent indicates unsupported or nil combinator content.
	ErrBadContent = errors.New("invalid content")
	// ErrRepeatBounds indicates invalid repetition bounds.
	ErrRepeatBounds = errors.New("invalid repetition bounds")
	// ErrNestedRepeat indicates a Repeat directly containing a Repeat.
	ErrNestedRepeat = errors.New("repeat of repeat")
	// ErrBadMode indicates an unknown Unmatched mode passed to Gsub.
	ErrBadMode = errors.New("invalid unmatched-line mode")
)

// UnmatchedError aborts Gsub in FailUnmatched mode. Row is the index of the
// first line the pattern did not match.
type UnmatchedError struct {
	Row int
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("pattern not matched at row %d", e.Row)
}

// DelimiterError aborts SplitBy when the delimiter pattern succeeds without
// consuming any line. Splitting on a zero-width match would produce an
// unbounded number of empty segments.
type DelimiterError struct {
	Row int
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("delimiter matched an empty sequence at row %d", e.Row)
}
