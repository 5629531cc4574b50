package search

import (
	"time"
)

type Timeframe string

const (
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

const dateLayout = "2006-01-02"

func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return true
	}
	return false
}

func (t Timeframe) String() string { return string(t) }

// Days - окно в днях. Всё неизвестное (и пустое) считается weekly.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeDaily:
		return 1
	case TimeframeMonthly:
		return 30
	default:
		return 7
	}
}

// TrendingQuery builds the "created:>DATE" query for the window ending at now,
// with a language qualifier appended when language is non-empty.
// DATE is a calendar date rendered in UTC.
func TrendingQuery(language string, tf Timeframe, now time.Time) string {
	since := now.AddDate(0, 0, -tf.Days()).UTC().Format(dateLayout)

	q := "created:>" + since
	if language != "" {
		q += " language:" + language
	}
	return q
}
