package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/meur/wyrmwiki/internal/data"
)

func main() {
	dataDir := flag.String("data", "./data", "Data directory")
	gitDir := flag.String("git", ".", "Repository root for HEAD comparison (empty to disable)")
	sortOnly := flag.Bool("sort-only", false, "Only sort entries")
	timestampsOnly := flag.Bool("timestamps-only", false, "Only bump timestamps")
	flag.Parse()

	opts := data.NormalizeOptions{
		Sort:       !*timestampsOnly,
		Timestamps: !*sortOnly,
		Now:        time.Now().Unix(),
		GitDir:     *gitDir,
	}

	targets := flag.Args()
	if len(targets) == 0 {
		var err error
		targets, err = data.DataFiles(*dataDir)
		if err != nil {
			log.Fatalf("Failed to list data files: %v", err)
		}
	}

	fmt.Printf("Normalizing %d file(s), timestamp %d\n", len(targets), opts.Now)

	totalBumped := 0
	for _, filename := range targets {
		report, err := data.NormalizeFile(*dataDir, filename, opts)
		if err != nil {
			log.Fatalf("Failed to normalize %s: %v", filename, err)
		}
		if !report.Exists {
			fmt.Printf("  SKIP %s: file not found\n", filename)
			continue
		}

		summary := ""
		if report.Sorted {
			summary += "sorted"
		}
		if report.Bumped > 0 || report.Skipped > 0 {
			if summary != "" {
				summary += ", "
			}
			summary += fmt.Sprintf("bumped %d", report.Bumped)
			if report.Skipped > 0 {
				summary += fmt.Sprintf(", skipped %d unchanged", report.Skipped)
			}
		}
		if summary == "" {
			summary = "no canonical order, left as-is"
		}
		fmt.Printf("  %s: %s\n", filename, summary)
		totalBumped += report.Bumped
	}

	fmt.Printf("Done. Updated %d entries.\n", totalBumped)
}
