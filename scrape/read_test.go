package scrape

import (
	"slices"
	"strings"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestReadLines(t *testing.T) {
	t.Run("nl", func(t *testing.T) {
		lines := testerr.Shall1(ReadLines(strings.NewReader("line1\nline2\n"))).BeNil(t)
		if !slices.Equal(lines, []string{"line1", "line2"}) {
			t.Errorf("lines %q", lines)
		}
	})
	t.Run("crnl", func(t *testing.T) {
		lines := testerr.Shall1(ReadLines(strings.NewReader("line1\r\nline2\r\n"))).BeNil(t)
		if !slices.Equal(lines, []string{"line1", "line2"}) {
			t.Errorf("lines %q", lines)
		}
	})
	t.Run("unterminated last line", func(t *testing.T) {
		lines := testerr.Shall1(ReadLines(strings.NewReader("line1\nline2"))).BeNil(t)
		if !slices.Equal(lines, []string{"line1", "line2"}) {
			t.Errorf("lines %q", lines)
		}
	})
	t.Run("empty input", func(t *testing.T) {
		lines := testerr.Shall1(ReadLines(strings.NewReader(""))).BeNil(t)
		if len(lines) != 0 {
			t.Errorf("lines %q", lines)
		}
	})
	t.Run("blank lines survive", func(t *testing.T) {
		lines := testerr.Shall1(ReadLines(strings.NewReader("a\n\nb\n"))).BeNil(t)
		if !slices.Equal(lines, []string{"a", "", "b"}) {
			t.Errorf("lines %q", lines)
		}
	})
}
