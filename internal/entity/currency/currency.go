package currency

import (
	"time"
)

// Pivot is the currency every rate in a Snapshot is quoted against.
const Pivot = "USD"

type UsageStatus string

const (
	StatusOK               UsageStatus = "ok"
	StatusAccessRestricted UsageStatus = "access_restricted"
)

// Snapshot is one fetched set of rates relative to Pivot.
type Snapshot struct {
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
}

func (s *Snapshot) Rate(code string) (float64, bool) {
	if s == nil {
		return 0, false
	}
	r, ok := s.Rates[code]
	return r, ok
}

func (s *Snapshot) FetchedAt() time.Time {
	return time.Unix(s.Timestamp, 0)
}

// Stale reports whether the snapshot is older than maxAgeHours at now.
// A missing snapshot, or one without a fetch timestamp, is always stale.
func (s *Snapshot) Stale(now time.Time, maxAgeHours float64) bool {
	if s == nil || s.Timestamp == 0 {
		return true
	}
	passedHours := float64(now.Unix()-s.Timestamp) / float64(time.Hour/time.Second)
	return passedHours > maxAgeHours
}

type Usage struct {
	RequestsRemaining int64
	DaysRemaining     int64
	Status            UsageStatus
}

func (u Usage) Exhausted() bool {
	return u.Status == StatusAccessRestricted || u.RequestsRemaining <= 0
}
