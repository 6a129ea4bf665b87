/*
Package seqpat matches and rewrites sequences of text lines. Unlike a
regular expression, which works on the characters of a single string, a
seqpat pattern works on whole lines: the unit of matching is one line, and
patterns combine line matchers into shapes that span several lines. This
fits the output of commands like `apt show` or `lshw`, which is structured
but irregular – key-value lines, indented continuations, section markers –
and has to be scraped back into data.

A pattern is built from two primitives and three combinators:

	Literal("foo")          one line equal to "foo"
	Regex(`^Key: (.*)$`)    one line whose prefix matches the expression
	Sequence(p, q, ...)     p, then q, then ... on consecutive positions
	Choice(p, q, ...)       the first of p, q, ... that matches
	Repeat(p, min, max)     p greedily up to max times, at least min times

Every pattern implements Parse, which either fails or reports the emitted
output items and the position after the match. By default a match emits the
lines it matched, but each node can carry one rewrite rule that replaces its
output: Replace substitutes a fixed item list, the Format variants compute
the output from the match. This way a pattern does not just recognize
shapes, it rewrites them:

	kv, _ := Regex(`^([A-Za-z0-9-]+): (.*)$`,
		FormatGroups(func(g GroupFunc) []any {
			return []any{[2]string{g(1), g(2)}}
		}))

matches a "Package: bash" line and emits the pair {"Package", "bash"}
instead of the line.

Two drivers apply a pattern across a whole line sequence. Gsub scans the
sequence and substitutes every match:

	out, _ := Gsub(kv, lines, KeepUnmatched)

Unmatched lines are copied, dropped or fatal depending on the mode. SplitBy
scans for delimiter matches and cuts the sequence into segments:

	segs, delims, _ := SplitBy(sectionStart, lines)

There is always one segment more than delimiter matches, so delimiters at
the edges and consecutive delimiters show up as empty segments.

Patterns are immutable after construction and safe for concurrent use. The
package does no I/O; see the scrape package for turning readers into line
sequences and for prebuilt patterns over common command output.
*/
package seqpat
