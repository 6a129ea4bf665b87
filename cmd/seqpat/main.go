// A command line tool to scrape line-oriented command output into JSON
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:   "seqpat",
	Short: "Scrape line-oriented command output into structured data",
	Long: `Scrape line-oriented command output into structured data.

seqpat matches whole lines, not characters. The kv command reads key-value
blocks with indented continuation lines, the way apt show prints them, and
emits one JSON object per input. The sections command splits its input at
section marker lines, the way lshw starts each entity with "*-", extracts
selected properties from each section and emits one JSON object per line.`,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
