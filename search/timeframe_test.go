package search

import (
	"testing"
	"time"
)

func TestTimeframe_Days(t *testing.T) {
	tests := []struct {
		tf   Timeframe
		want int
	}{
		{TimeframeDaily, 1},
		{TimeframeWeekly, 7},
		{TimeframeMonthly, 30},
		{"", 7},
		{"bogus", 7},
		{"Daily", 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			if got := tt.tf.Days(); got != tt.want {
				t.Errorf("Timeframe(%q).Days() = %d, want %d", tt.tf, got, tt.want)
			}
		})
	}
}

func TestTimeframe_IsValid(t *testing.T) {
	for _, tf := range []Timeframe{TimeframeDaily, TimeframeWeekly, TimeframeMonthly} {
		if !tf.IsValid() {
			t.Errorf("%q should be valid", tf)
		}
	}
	for _, tf := range []Timeframe{"", "yearly", "WEEKLY"} {
		if tf.IsValid() {
			t.Errorf("%q should be invalid", tf)
		}
	}
}

func TestTrendingQuery(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		language string
		tf       Timeframe
		want     string
	}{
		{"daily no language", "", TimeframeDaily, "created:>2024-03-14"},
		{"weekly go", "go", TimeframeWeekly, "created:>2024-03-08 language:go"},
		{"monthly rust", "rust", TimeframeMonthly, "created:>2024-02-14 language:rust"},
		{"unknown falls back to weekly", "rust", "bogus", "created:>2024-03-08 language:rust"},
		{"empty timeframe", "", "", "created:>2024-03-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendingQuery(tt.language, tt.tf, now); got != tt.want {
				t.Errorf("TrendingQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrendingQuery_CrossesYear(t *testing.T) {
	now := time.Date(2025, time.January, 3, 8, 30, 0, 0, time.UTC)

	got := TrendingQuery("", TimeframeWeekly, now)
	if got != "created:>2024-12-27" {
		t.Errorf("TrendingQuery() = %q, want created:>2024-12-27", got)
	}
}

func TestTrendingQuery_RendersUTCDate(t *testing.T) {
	// 01:00 в UTC+3 - это ещё предыдущий день по UTC
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2024, time.March, 15, 1, 0, 0, 0, loc)

	got := TrendingQuery("", TimeframeDaily, now)
	if got != "created:>2024-03-13" {
		t.Errorf("TrendingQuery() = %q, want created:>2024-03-13", got)
	}
}
