package seqpat

import "fmt"

type optKind int

const (
	optReplace optKind = iota
	optFormat
	optFormatText
	optFormatMatch
	optFormatGroups
	optSeparator
)

func (k optKind) String() string {
	switch k {
	case optReplace:
		return "Replace"
	case optFormat:
		return "Format"
	case optFormatText:
		return "FormatText"
	case optFormatMatch:
		return "FormatMatch"
	case optFormatGroups:
		return "FormatGroups"
	case optSeparator:
		return "Separator"
	}
	return fmt.Sprintf("option %d", int(k))
}

// Option configures a pattern node at construction time. Each node accepts
// at most one rewrite rule – Replace, Format, FormatText, FormatMatch or
// FormatGroups – that turns the matched lines into the node's output items.
// Which rewrite rules a node kind supports is documented with its
// constructor; an unsupported or duplicate rewrite is a construction error.
type Option struct {
	kind      optKind
	items     []any
	fmtAll    func(items []any) []any
	fmtText   func(line string) []any
	fmtMatch  func(m *Match) []any
	fmtGroups func(g GroupFunc) []any
	sep       string
}

// Replace discards the matched content and emits items instead. Replace()
// with no arguments emits nothing, which drops the match from the output.
func Replace(items ...any) Option {
	if items == nil {
		items = []any{}
	}
	return Option{kind: optReplace, items: items}
}

// Format passes all items the node would emit to fn and emits fn's result
// instead. Supported by Sequence and Repeat.
func Format(fn func(items []any) []any) Option {
	return Option{kind: optFormat, fmtAll: fn}
}

// FormatText passes the full text of the matched line to fn and emits fn's
// result. Supported by Regex.
func FormatText(fn func(line string) []any) Option {
	return Option{kind: optFormatText, fmtText: fn}
}

// FormatMatch passes the regexp match to fn and emits fn's result.
// Supported by Regex.
func FormatMatch(fn func(m *Match) []any) Option {
	return Option{kind: optFormatMatch, fmtMatch: fn}
}

// FormatGroups passes a capture group accessor to fn and emits fn's result.
// Supported by Regex.
func FormatGroups(fn func(g GroupFunc) []any) Option {
	return Option{kind: optFormatGroups, fmtGroups: fn}
}

// Separator makes a Repeat emit sep between the outputs of consecutive
// repetitions. Only Repeat supports it.
func Separator(sep string) Option {
	return Option{kind: optSeparator, sep: sep}
}

// rewrite returns the replacement for items according to a list rewrite
// rule, i.e. Replace or Format.
func (o *Option) rewrite(items []any) []any {
	switch o.kind {
	case optReplace:
		return o.items
	case optFormat:
		return o.fmtAll(items)
	}
	panic("not a list rewrite: " + o.kind.String())
}

// pickOptions validates opts for a node kind that accepts the rewrite kinds
// in accept, returning the single rewrite rule and separator, if any.
func pickOptions(node string, opts []Option, allowSep bool, accept ...optKind) (rw *Option, sep *string, err error) {
	for i := range opts {
		o := &opts[i]
		if o.kind == optSeparator {
			switch {
			case !allowSep:
				return nil, nil, fmt.Errorf("%s: %s: %w", node, o.kind, ErrBadOption)
			case sep != nil:
				return nil, nil, fmt.Errorf("%s: duplicate %s: %w", node, o.kind, ErrBadOption)
			}
			sep = &o.sep
			continue
		}
		ok := false
		for _, k := range accept {
			if o.kind == k {
				ok = true
				break
			}
		}
		if !ok {
			return nil, nil, fmt.Errorf("%s: %s: %w", node, o.kind, ErrBadOption)
		}
		if rw != nil {
			return nil, nil, fmt.Errorf("%s: %s and %s: %w",
				node, rw.kind, o.kind, ErrRewriteConflict)
		}
		rw = o
	}
	return rw, sep, nil
}
