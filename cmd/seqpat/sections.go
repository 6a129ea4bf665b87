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
	sectionsCmd.Run = sectionFiles
	sectionsCmd.Flags().StringVarP(&sectionsCmd.marker, "delimiter", "d",
		sectionsCmd.marker,
		"Set the section start marker")
	sectionsCmd.Flags().StringSliceVarP(&sectionsCmd.fields, "field", "f",
		sectionsCmd.fields,
		"Extract this property from each section (repeatable)")
	sectionsCmd.Flags().StringVarP(&sectionsCmd.require, "require", "r",
		sectionsCmd.require,
		"Only print sections that have this property, empty prints all")
	rootCmd.AddCommand(&sectionsCmd.Command)
}

var sectionsCmd = struct {
	cobra.Command
	marker  string
	fields  []string
	require string
}{
	Command: cobra.Command{
		Use:   "sections [files...]",
		Short: "Extract properties from sectioned output like `lshw` as JSON lines",
	},
	marker:  "*-",
	fields:  []string{"description", "product", "vendor", "logical name"},
	require: "product",
}

func sectionFiles(cmd *cobra.Command, files []string) {
	if len(files) == 0 {
		sectionScrape("stdin", os.Stdin)
		return
	}
	for _, f := range files {
		sectionFile(f)
	}
}

func sectionFile(name string) {
	rd, err := os.Open(name)
	if err != nil {
		log.Fatal(err)
	}
	defer rd.Close()
	sectionScrape(name, rd)
}

func sectionScrape(name string, rd io.Reader) {
	fields, err := scrape.Fields(sectionsCmd.fields...)
	if err != nil {
		log.Fatal(err)
	}
	lines, err := scrape.ReadLines(rd)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	segs, _, err := seqpat.SplitBy(scrape.SectionStart(sectionsCmd.marker), lines)
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
	for _, seg := range segs {
		items, err := seqpat.Gsub(fields, seg, seqpat.DropUnmatched)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		rec, err := scrape.Collect(items)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		if sectionsCmd.require != "" && !rec.Has(sectionsCmd.require) {
			continue
		}
		out, err := json.Marshal(rec)
		if err != nil {
			log.Fatalf("%s: %s", name, err)
		}
		fmt.Println(string(out))
	}
}
