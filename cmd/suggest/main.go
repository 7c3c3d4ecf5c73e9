// Processes a "suggest new data" GitHub issue inside GitHub Actions:
// reads the issue event, validates the embedded JSON payload, and appends
// it to the matching data file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/meur/wyrmwiki/internal/suggest"
)

func main() {
	eventPath := flag.String("event", os.Getenv("GITHUB_EVENT_PATH"), "GitHub event JSON path")
	dataDir := flag.String("data", "./data", "Data directory")
	flag.Parse()

	if *eventPath == "" {
		log.Fatal("No event file: set -event or GITHUB_EVENT_PATH")
	}

	outcome, err := suggest.ProcessEventFile(*eventPath, *dataDir)
	if err != nil {
		log.Fatalf("Failed to process issue #%d: %v", outcome.IssueNumber, err)
	}

	if outcome.Skipped {
		fmt.Printf("Issue #%d has no suggestion prefix, skipping\n", outcome.IssueNumber)
		return
	}

	outputPath := os.Getenv("GITHUB_OUTPUT")
	if err := suggest.WriteActionOutput(outputPath, "json_file", outcome.DataFile); err != nil {
		log.Fatalf("Failed to write action output: %v", err)
	}
	if err := suggest.WriteActionOutput(outputPath, "label", string(outcome.Kind)); err != nil {
		log.Fatalf("Failed to write action output: %v", err)
	}

	fmt.Printf("Issue #%d: appended to %s\n", outcome.IssueNumber, outcome.DataFile)
}
