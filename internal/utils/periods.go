package utils

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "realestate-valley/internal/errors"
)

// PeriodLayout is the upstream DEAL_YMD format.
const PeriodLayout = "200601"

// ParsePeriod parses a YYYYMM string into the first day of that month (UTC).
func ParsePeriod(period string) (time.Time, error) {
	if len(period) != len(PeriodLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidPeriod, period)
	}
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidPeriod, period)
	}
	return t, nil
}

// IsValidPeriod reports whether period is a well-formed YYYYMM month.
func IsValidPeriod(period string) bool {
	_, err := ParsePeriod(period)
	return err == nil
}

// FormatPeriod renders the month containing t as YYYYMM.
func FormatPeriod(t time.Time) string {
	return t.Format(PeriodLayout)
}

// PeriodLabel renders YYYYMM as YYYY.MM. Malformed input is returned as is.
func PeriodLabel(period string) string {
	if !IsValidPeriod(period) {
		return period
	}
	return period[:4] + "." + period[4:]
}

// AddMonths shifts a YYYYMM period by n months.
func AddMonths(period string, n int) (string, error) {
	t, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}
	return FormatPeriod(time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)), nil
}

// RecentMonths returns the n months ending with the month of now, oldest first.
func RecentMonths(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	periods := make([]string, n)
	for i := 0; i < n; i++ {
		offset := n - 1 - i
		periods[i] = FormatPeriod(time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC))
	}
	return periods
}

// PreviousMonth returns the month before the month of now as YYYYMM.
func PreviousMonth(now time.Time) string {
	return FormatPeriod(time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC))
}

// IsOpenPeriod reports whether deals for period may still be reported,
// i.e. the period is the month of now or later.
func IsOpenPeriod(period string, now time.Time) bool {
	return period >= FormatPeriod(now)
}

// SplitPeriods splits a comma separated period list, dropping blanks.
func SplitPeriods(csv string) []string {
	var periods []string
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			periods = append(periods, p)
		}
	}
	return periods
}

// SortPeriods returns the periods oldest first. YYYYMM sorts chronologically
// as text.
func SortPeriods(periods []string) []string {
	sorted := slices.Clone(periods)
	slices.Sort(sorted)
	return sorted
}
