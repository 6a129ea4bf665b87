// Package scrape provides ready-made seqpat patterns and helpers for
// scraping key-value style command output, e.g. from `apt show` or `lshw`.
//
// The field patterns emit Pair items. A Gsub run over a block of output
// yields a flat list of pairs that Collect folds into an ordered Record:
//
//	lines, _ := scrape.ReadLines(cmdOutput)
//	items, _ := seqpat.Gsub(scrape.KVBlock(), lines, seqpat.FailUnmatched)
//	rec, _ := scrape.Collect(items)
//	json.Marshal(rec)
//
// For sectioned output like lshw, split on a SectionStart delimiter first
// and scrape each segment with a Fields pattern.
package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fractalqb/seqpat"
)

// Pair is the item emitted by the field patterns of this package. A Pair
// with the continuation key " " carries text that continues the value of
// the preceding field.
type Pair struct {
	Key, Val string
}

func pair(g seqpat.GroupFunc) []any { return []any{Pair{Key: g(1), Val: g(2)}} }

func must(p seqpat.Pattern, err error) seqpat.Pattern {
	if err != nil {
		panic(err)
	}
	return p
}

// Header matches a `Key: Value` line with an alphanumeric-or-dash key and
// emits the Pair{Key, Value}.
func Header() seqpat.Pattern {
	return must(seqpat.Regex(`^([A-Za-z0-9-]+): (.*)$`, seqpat.FormatGroups(pair)))
}

// Continuation matches an indented continuation line and emits a Pair with
// the continuation key " " and the line's content after the first space.
func Continuation() seqpat.Pattern {
	return must(seqpat.Regex(`^ ( *[^ ].*)$`, seqpat.FormatGroups(func(g seqpat.GroupFunc) []any {
		return []any{Pair{Key: " ", Val: g(1)}}
	})))
}

// Blank matches a blank line and emits nothing.
func Blank() seqpat.Pattern {
	return must(seqpat.Regex(`^\s*$`, seqpat.Replace()))
}

// KVBlock matches one line of a key-value block the way `apt show` prints
// them: a header line, a continuation line or a blank line.
func KVBlock() seqpat.Pattern {
	return must(seqpat.Choice(Header(), Continuation(), Blank()))
}

// Fields matches a `name: value` line for one of the given property names,
// tolerating leading whitespace, and emits the Pair{name, value}. This is
// the per-section extraction pattern for lshw-style output.
func Fields(names ...string) (seqpat.Pattern, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("scrape.Fields: no field names")
	}
	alts := make([]string, len(names))
	for i, n := range names {
		alts[i] = regexp.QuoteMeta(n)
	}
	return seqpat.Regex(
		`^\s*(`+strings.Join(alts, "|")+`):\s+(.*)$`,
		seqpat.FormatGroups(pair),
	)
}

// SectionStart matches a section header line: optional leading whitespace
// followed by marker, e.g. the "*-" entity markers of lshw. Use it as the
// delimiter of seqpat.SplitBy.
func SectionStart(marker string) seqpat.Pattern {
	return must(seqpat.Regex(`^\s*` + regexp.QuoteMeta(marker) + `(.*)$`))
}
