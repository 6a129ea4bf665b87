package seqpat

import "fmt"

// Scrape an apt show style key-value block into pairs. Continuation lines
// come out with the key " " so the caller can append them to the previous
// value.
func Example_keyValueBlock() {
	lines := []string{
		"Package: bash",
		"Description: GNU Bourne Again SHell",
		" Bash is an sh-compatible command language",
		"",
	}
	kv, _ := Regex(`^([A-Za-z0-9-]+): (.*)$`,
		FormatGroups(func(g GroupFunc) []any {
			return []any{[2]string{g(1), g(2)}}
		}))
	cont, _ := Regex(`^ ( *[^ ].*)$`,
		FormatGroups(func(g GroupFunc) []any {
			return []any{[2]string{" ", g(1)}}
		}))
	blank, _ := Regex(`^\s*$`, Replace())
	block, _ := Choice(kv, cont, blank)

	items, err := Gsub(block, lines, FailUnmatched)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, it := range items {
		p := it.([2]string)
		fmt.Printf("%q: %q\n", p[0], p[1])
	}
	// Output:
	// "Package": "bash"
	// "Description": "GNU Bourne Again SHell"
	// " ": "Bash is an sh-compatible command language"
}
