package suggest

import (
	"encoding/json"
	"fmt"
	"os"
)

// IssueEvent is the subset of a GitHub issues webhook payload we read
type IssueEvent struct {
	Issue struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
	} `json:"issue"`
}

// Outcome reports what processing an event did
type Outcome struct {
	IssueNumber int
	Kind        Kind
	DataFile    string
	// Skipped is set when the issue title carries no suggestion prefix
	Skipped bool
}

// ProcessEventFile reads a GitHub issue event from eventPath, validates
// the embedded suggestion, and appends it to the matching data file.
func ProcessEventFile(eventPath, dataDir string) (Outcome, error) {
	raw, err := os.ReadFile(eventPath)
	if err != nil {
		return Outcome{}, fmt.Errorf("read event: %w", err)
	}

	var event IssueEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return Outcome{}, fmt.Errorf("parse event: %w", err)
	}

	outcome := Outcome{IssueNumber: event.Issue.Number}

	kind, ok := KindFromTitle(event.Issue.Title)
	if !ok {
		outcome.Skipped = true
		return outcome, nil
	}
	outcome.Kind = kind
	outcome.DataFile = kind.DataFile()

	data, err := ExtractJSON(event.Issue.Body)
	if err != nil {
		return outcome, err
	}
	if err := Validate(kind, data); err != nil {
		return outcome, err
	}
	entry, err := Normalize(kind, data)
	if err != nil {
		return outcome, err
	}
	if err := Append(dataDir, kind, entry); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// WriteActionOutput appends a name=value pair to the GitHub Actions
// output file; a missing path is a no-op so local runs just skip it.
func WriteActionOutput(outputPath, name, value string) error {
	if outputPath == "" {
		return nil
	}
	f, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s=%s\n", name, value)
	return err
}
