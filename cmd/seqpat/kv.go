package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/seqpat"
	"github.com/fractalqb/seqpat/scrape"
)

func init() {
	kvCmd.Run = kvFiles
	kvCmd.Flags().BoolVarP(&kvCmd.lenient, "lenient", "l", false,
		"Drop lines that fit no key-value shape instead of failing")
	rootCmd.AddCommand(&kvCmd.Command)
}

var kvCmd = struct {
	cobra.Command
	lenient bool
}{
	Command: cobra.Command{
		Use:   "kv [files...]",
		Short: "Convert key-value block output like `apt show` to JSON",
	},
}

func kvFiles(cmd *cobra.Command, files []string) {
	if len(files) == 0 {
		kvScrape("stdin", os.Stdin)
		return
	}
	for _, f := range files {
		kvFile(f)
	}
}

func kvFile(name string) {
	rd, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer rd.Close()
	kvScrape(name, rd)
}

func kvScrape(name string, rd io.Reader) {
	lines, err := scrape.ReadLines(rd)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	mode := seqpat.FailUnmatched
	if kvCmd.lenient {
		mode = seqpat.DropUnmatched
	}
	items, err := seqpat.Gsub(scrape.KVBlock(), lines, mode)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	rec, err := scrape.Collect(items)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	out, err := json.MarshalIndent(rec, "", "    ")
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	fmt.Println(string(out))
}
