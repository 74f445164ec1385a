package lostfound

import "time"

type Status string

const (
	StatusLost      Status = "Lost"
	StatusFound     Status = "Found"
	StatusRecovered Status = "Recovered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusLost, StatusFound, StatusRecovered:
		return true
	}
	return false
}

// Item is a lost or found report. DateFound is a calendar date (UTC midnight).
type Item struct {
	ReportID        int
	UserID          int
	Location        string
	ItemDescription string
	Status          Status
	ReportDate      time.Time
	DateFound       *time.Time
}
