package domain

import "time"

// Interview is one scheduled interview derived from a candidate record.
type Interview struct {
	CandidateID string
	Name        string
	Position    string
	Status      Status
	Date        time.Time
}
