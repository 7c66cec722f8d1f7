package logging

import "time"

// #region entry

// Entry is one row of the dispatch decision log: which intent came in,
// what it was corrected to, and which branch answered.
type Entry struct {
	RequestID       string
	RawIntent       string
	CorrectedIntent string
	Confidence      float64
	Source          string
	Reply           string
	CreatedAt       time.Time
}

// #endregion entry
