package search

import (
	"testing"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate_ISOAndDisplayFormAgree(t *testing.T) {
	iso, err := NormalizeDate("2025-11-07")
	assert.NoError(t, err)

	display, err := NormalizeDate("7 Thg 11, 2025")
	assert.NoError(t, err)

	assert.Equal(t, iso, display)
	assert.Equal(t, time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC), iso.Start)
	assert.Equal(t, time.Date(2025, 11, 7, 23, 59, 59, 999000000, time.UTC), iso.End)
}

func TestNormalizeDate_ISOWithTimeSuffix(t *testing.T) {
	got, err := NormalizeDate("2025-03-02T14:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), got.Start)
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "Thg 11 2025", "12 Thg 99, 2025"} {
		_, err := NormalizeDate(input)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, "input=%q", input)
	}
}

func TestNormalizeCabin(t *testing.T) {
	assert.Equal(t, domain.CabinEconomy, NormalizeCabin("Phổ thông"))
	assert.Equal(t, domain.CabinPremiumEconomy, NormalizeCabin("Phổ thông cao cấp"))
	assert.Equal(t, domain.CabinBusiness, NormalizeCabin("Thương gia"))
	assert.Equal(t, domain.CabinFirst, NormalizeCabin("Hạng nhất"))
}

func TestNormalizeCabin_UnknownLabelPassesThrough(t *testing.T) {
	assert.Equal(t, domain.CabinClass("Business"), NormalizeCabin("Business"))
	assert.Equal(t, domain.CabinClass("Suite"), NormalizeCabin("Suite"))
}
