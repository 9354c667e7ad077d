package vo

import "time"

// Status is a snapshot of the service between and during scans.
type Status struct {
	Scanning  bool
	Done      int
	Total     int
	LastScan  *ScanResult
	LastError string
	LastRun   time.Time
}
