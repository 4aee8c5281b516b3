package entity

import "time"

// Source identifies the bhavcopy archive for one run.
// It is computed once from the run timestamp and passed down explicitly.
type Source struct {
	Date       time.Time // UTC calendar day the archive belongs to
	ArchiveURL string    // Fully-formed download URL of the zip archive
	EntryName  string    // Name of the CSV file inside the archive
}

// SyncResult summarizes a completed run.
type SyncResult struct {
	RunID       string
	Date        time.Time
	RecordCount int
	Response    string // Raw body returned by the ingest endpoint
}
