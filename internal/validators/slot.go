package validators

import "time"

// Slot keys are opaque strings, but the API still rejects garbage at the
// edge: date must be "2006-01-02", time a "15:04" label on the half hour.

func IsValidSlotDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func IsValidSlotTime(t string) bool {
	parsed, err := time.Parse("15:04", t)
	if err != nil {
		return false
	}
	return parsed.Minute()%30 == 0
}
