package services

import "time"

const dateLayout = "2006-01-02"

// DateOnly truncates a timestamp to its calendar day in UTC. All cycle math
// works on naive calendar dates.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from time.Time, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

func formatDay(value time.Time) string {
	return value.Format(dateLayout)
}

// ParseDay parses an ISO-8601 calendar date.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
