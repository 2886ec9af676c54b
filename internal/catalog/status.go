package catalog

import (
	"math"
	"time"

	"techrecruit-portal/internal/models"
)

const dateLayout = "2006-01-02"

// DeriveStatus computes a posting's lifecycle state. An explicit, non-blank
// status field is trusted verbatim. Otherwise the deadline decides: Open
// strictly before the deadline date, Closed from the deadline date onward,
// Unknown when the deadline does not parse.
//
// The comparison is date-granular: today is normalized to midnight so that a
// posting stays Open for the whole day before its deadline and becomes
// Closed on the deadline date itself.
func DeriveStatus(rec *models.JobRecord, today time.Time) models.JobStatus {
	if rec.HasStatusOverride() {
		return models.JobStatus(rec.Status)
	}

	deadline, err := time.Parse(dateLayout, rec.LastDateToApply)
	if err != nil {
		return models.JobStatusUnknown
	}

	if midnight(today).Before(deadline) {
		return models.JobStatusOpen
	}
	return models.JobStatusClosed
}

// DaysRemaining counts the days until the application deadline, rounded up
// from the current instant. A negative count means the deadline has passed;
// the boolean is false when the deadline does not parse.
func DaysRemaining(rec *models.JobRecord, now time.Time) (int, bool) {
	deadline, err := time.Parse(dateLayout, rec.LastDateToApply)
	if err != nil {
		return 0, false
	}
	hours := deadline.Sub(now.UTC()).Hours()
	return int(math.Ceil(hours / 24)), true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
