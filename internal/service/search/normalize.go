package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
)

// DateRange is a closed UTC day interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NormalizeDate resolves the two date shapes clients send: a strict
// YYYY-MM-DD prefix, or the localized display form "7 Thg 11, 2025"
// (day, month marker, numeric month, comma, year). The display form is taken
// apart positionally, not through a calendar library. The result covers the
// whole UTC day.
func NormalizeDate(input string) (DateRange, error) {
	if y, m, d, ok := parseISODate(input); ok {
		return dayRange(y, m, d), nil
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(input, ",", ""))
	parts := strings.Fields(cleaned)
	if len(parts) >= 4 {
		day, errD := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[2])
		year, errY := strconv.Atoi(parts[3])
		if errD == nil && errM == nil && errY == nil && month >= 1 && month <= 12 {
			return dayRange(year, time.Month(month), day), nil
		}
	}

	return DateRange{}, fmt.Errorf("%q: %w", input, domain.ErrInvalidDate)
}

func parseISODate(input string) (int, time.Month, int, bool) {
	if len(input) < 10 {
		return 0, 0, 0, false
	}
	t, err := time.Parse("2006-01-02", input[:10])
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Year(), t.Month(), t.Day(), true
}

func dayRange(year int, month time.Month, day int) DateRange {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: start,
		End:   start.Add(24*time.Hour - time.Millisecond),
	}
}

var cabinLabels = map[string]domain.CabinClass{
	"Phổ thông":          domain.CabinEconomy,
	"Phổ thông cao cấp":  domain.CabinPremiumEconomy,
	"Thương gia":         domain.CabinBusiness,
	"Hạng nhất":          domain.CabinFirst,
}

// NormalizeCabin maps localized cabin labels to canonical cabin classes.
// Unrecognized labels pass through unchanged so already-canonical values and
// future cabins keep working.
func NormalizeCabin(label string) domain.CabinClass {
	if cabin, ok := cabinLabels[label]; ok {
		return cabin
	}
	return domain.CabinClass(label)
}
