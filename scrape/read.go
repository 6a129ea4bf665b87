package scrape

import (
	"bufio"
	"io"
)

// ReadLines reads r completely into a line sequence for matching. Line
// terminators, "\n" as well as "\r\n", are stripped; a missing terminator
// on the last line is accepted.
func ReadLines(r io.Reader) ([]string, error) {
	scn := bufio.NewScanner(r)
	lines := []string{}
	for scn.Scan() {
		lines = append(lines, scn.Text())
	}
	return lines, scn.Err()
}
