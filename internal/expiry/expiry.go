// internal/expiry/expiry.go

// Package expiry classifies licencia expiration dates relative to the fixed
// business timezone (America/Lima). All comparisons are by calendar date:
// both instants are moved into the business zone and truncated to midnight
// first, so a licencia expiring at 23:59 and one expiring at 00:01 of the
// same day classify identically.
package expiry

import "time"

// BusinessTimezone is the reference zone for every "today/tomorrow"
// classification, independent of server or client local time.
const BusinessTimezone = "America/Lima"

var businessLocation *time.Location

func init() {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		// tzdata missing on the host; UTC keeps the math well defined.
		loc = time.UTC
	}
	businessLocation = loc
}

// truncate returns t's calendar date in the business zone at midnight.
func truncate(t time.Time) time.Time {
	t = t.In(businessLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, businessLocation)
}

// VenceHoy reports whether fin falls on now's calendar date.
func VenceHoy(fin, now time.Time) bool {
	return truncate(fin).Equal(truncate(now))
}

// VenceManana reports whether fin falls on the calendar day after now.
func VenceManana(fin, now time.Time) bool {
	return truncate(fin).Equal(truncate(now).AddDate(0, 0, 1))
}

// DiasRestantes returns the whole-day difference between fin and now,
// negative for overdue licencias.
func DiasRestantes(fin, now time.Time) int {
	return int(truncate(fin).Sub(truncate(now)).Hours() / 24)
}
