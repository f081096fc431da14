package service

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tripbook/internal/domain"
)

// Timing labels shown on trip cards.
const (
	LabelFinished   = "Finalizada"
	LabelSoon       = "Em breve"
	LabelToday      = "Hoje"
	LabelInProgress = "Em andamento"
)

// countdownWindowDays is the largest distance still shown in days.
const countdownWindowDays = 60

var monthAbbreviations = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

var (
	dayMonthPattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(?:de\s+)?([a-z]{3})`)
	yearPattern     = regexp.MustCompile(`\b(\d{4})\b`)
)

// ParseTripStart extracts the first day of a free-form date range such as
// "10 Out - 24 Out, 2024". The last four-digit number is taken as the year;
// without one the current year of now is assumed.
func ParseTripStart(dateRange string, now time.Time) (time.Time, bool) {
	m := dayMonthPattern.FindStringSubmatch(dateRange)
	if m == nil {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 {
		return time.Time{}, false
	}
	month, ok := monthAbbreviations[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}

	year := now.Year()
	if years := yearPattern.FindAllStringSubmatch(dateRange, -1); len(years) > 0 {
		year, _ = strconv.Atoi(years[len(years)-1][1])
	}

	start := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if start.Day() != day {
		// e.g. 31 Fev rolled over into March.
		return time.Time{}, false
	}
	return start, true
}

// DaysUntil returns the number of calendar days from now to t, with the
// time of day dropped on both sides.
func DaysUntil(t, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	return int(math.Round(day.Sub(today).Hours() / 24))
}

// TimingLabel returns the countdown label of a trip card.
func TimingLabel(dateRange string, status domain.TripStatus, now time.Time) string {
	if status == domain.TripStatusPast {
		return LabelFinished
	}

	start, ok := ParseTripStart(dateRange, now)
	if !ok {
		return LabelSoon
	}

	days := DaysUntil(start, now)
	switch {
	case days == 0:
		return LabelToday
	case days < 0:
		return LabelInProgress
	case days == 1:
		return "Falta 1 dia"
	case days <= countdownWindowDays:
		return fmt.Sprintf("Faltam %d dias", days)
	}

	months := int(math.Round(float64(days) / 30))
	return fmt.Sprintf("Em %d meses", months)
}
