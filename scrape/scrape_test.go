package scrape

import (
	"slices"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"

	"github.com/fractalqb/seqpat"
)

func TestHeader(t *testing.T) {
	p := Header()
	out, next, ok := p.Parse([]string{"Package: bash"}, 0)
	if !ok || next != 1 {
		t.Fatalf("ok %t next %d", ok, next)
	}
	if out[0] != (Pair{Key: "Package", Val: "bash"}) {
		t.Errorf("output %v", out)
	}
	t.Run("no match on continuation", func(t *testing.T) {
		if _, _, ok := p.Parse([]string{" wrapped value"}, 0); ok {
			t.Error("match on indented line")
		}
	})
}

func TestContinuation(t *testing.T) {
	p := Continuation()
	out, _, ok := p.Parse([]string{"  wrapped value"}, 0)
	if !ok {
		t.Fatal("no match")
	}
	// only the first space is stripped
	if out[0] != (Pair{Key: " ", Val: " wrapped value"}) {
		t.Errorf("output %v", out)
	}
	if _, _, ok := p.Parse([]string{"Package: bash"}, 0); ok {
		t.Error("match on header line")
	}
}

func TestBlank(t *testing.T) {
	p := Blank()
	out, next, ok := p.Parse([]string{"   "}, 0)
	if !ok || next != 1 || len(out) != 0 {
		t.Errorf("ok %t next %d output %v", ok, next, out)
	}
	if _, _, ok := p.Parse([]string{" x "}, 0); ok {
		t.Error("match on non-blank line")
	}
}

func TestKVBlock(t *testing.T) {
	lines := []string{
		"Package: bash",
		"Version: 5.2",
		"Description: GNU Bourne Again SHell",
		" Bash is an sh-compatible command",
		" language interpreter.",
		"",
	}
	items := testerr.Shall1(
		seqpat.Gsub(KVBlock(), lines, seqpat.FailUnmatched),
	).BeNil(t)
	rec := testerr.Shall1(Collect(items)).BeNil(t)

	if keys := rec.Keys(); !slices.Equal(keys, []string{"Package", "Version", "Description"}) {
		t.Errorf("keys %v", keys)
	}
	if v, _ := rec.Get("Description"); v !=
		"GNU Bourne Again SHell\nBash is an sh-compatible command\nlanguage interpreter." {
		t.Errorf("description %q", v)
	}

	t.Run("strict mode rejects stray lines", func(t *testing.T) {
		_, err := seqpat.Gsub(KVBlock(), []string{"no key value shape"}, seqpat.FailUnmatched)
		if err == nil {
			t.Error("no error")
		}
	})
}

func TestFields(t *testing.T) {
	p := testerr.Shall1(Fields("description", "product", "logical name")).BeNil(t)

	out, _, ok := p.Parse([]string{"       product: Ryzen 7"}, 0)
	if !ok || out[0] != (Pair{Key: "product", Val: "Ryzen 7"}) {
		t.Errorf("ok %t output %v", ok, out)
	}
	out, _, ok = p.Parse([]string{"  logical name: /dev/sda"}, 0)
	if !ok || out[0] != (Pair{Key: "logical name", Val: "/dev/sda"}) {
		t.Errorf("ok %t output %v", ok, out)
	}
	if _, _, ok = p.Parse([]string{"       vendor: AMD"}, 0); ok {
		t.Error("match on unlisted property")
	}

	t.Run("no names", func(t *testing.T) {
		if _, err := Fields(); err == nil {
			t.Error("no error")
		}
	})
}

func TestSectionStart(t *testing.T) {
	lines := []string{
		"machine",
		"    description: Computer",
		"  *-cpu",
		"       description: CPU",
		"       product: Ryzen 7",
		"       vendor: AMD",
		"  *-memory",
		"       description: System memory",
	}
	segs, delims, err := seqpat.SplitBy(SectionStart("*-"), lines)
	testerr.Shall(err).BeNil(t)
	if len(segs) != 3 || len(delims) != 2 {
		t.Fatalf("%d segments, %d delimiters", len(segs), len(delims))
	}

	fields := testerr.Shall1(Fields("description", "product", "vendor")).BeNil(t)
	items := testerr.Shall1(
		seqpat.Gsub(fields, segs[1], seqpat.DropUnmatched),
	).BeNil(t)
	rec := testerr.Shall1(Collect(items)).BeNil(t)
	if !rec.Has("product") {
		t.Error("no product field")
	}
	if v, _ := rec.Get("vendor"); v != "AMD" {
		t.Errorf("vendor %q", v)
	}

	rec = testerr.Shall1(Collect(testerr.Shall1(
		seqpat.Gsub(fields, segs[2], seqpat.DropUnmatched),
	).BeNil(t))).BeNil(t)
	if rec.Has("product") {
		t.Error("memory section has product")
	}
}
