package booking

import (
	"testing"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/service/loyalty"
	"github.com/stretchr/testify/assert"
)

func TestComposeBookingCreated_SingleFlight(t *testing.T) {
	flight := &domain.Flight{
		From:      "HAN",
		To:        "SGN",
		Departure: time.Date(2025, 11, 7, 6, 30, 0, 0, time.UTC), // a Friday
	}
	booking := &domain.Booking{
		BookingCode: "XK7P2Q",
		FlightIDs:   []string{"f1"},
		TripType:    domain.TripOneWay,
	}

	title, message := composeBookingCreated(booking, []domain.FlightRef{domain.RefResolved(flight)})

	assert.Equal(t, "Đặt vé thành công", title)
	assert.Equal(t, "Bạn đã đặt thành công vé với mã đặt chỗ XK7P2Q. Chuyến bay HAN → SGN, khởi hành 06:30 • T6, 07/11/2025.", message)
}

func TestComposeBookingCreated_MultiCityAggregatesRoute(t *testing.T) {
	departure := time.Date(2025, 11, 9, 14, 5, 0, 0, time.UTC) // a Sunday
	legs := []domain.FlightRef{
		domain.RefResolved(&domain.Flight{From: "HAN", To: "DAD", Departure: departure}),
		domain.RefResolved(&domain.Flight{From: "DAD", To: "SGN", Departure: departure.Add(26 * time.Hour)}),
		domain.RefResolved(&domain.Flight{From: "SGN", To: "HAN", Departure: departure.Add(50 * time.Hour)}),
	}
	booking := &domain.Booking{
		BookingCode: "A2B3C4",
		FlightIDs:   []string{"f1", "f2", "f3"},
		TripType:    domain.TripMultiCity,
	}

	_, message := composeBookingCreated(booking, legs)

	assert.Contains(t, message, "Bạn đã đặt thành công 3 vé với mã đặt chỗ A2B3C4.")
	assert.Contains(t, message, "HAN → DAD → SGN → HAN (3 chặng)")
	assert.Contains(t, message, "khởi hành 14:05 • CN, 09/11/2025")
}

func TestComposeBookingCreated_NoResolvedFlights(t *testing.T) {
	booking := &domain.Booking{BookingCode: "ZZ9Y8X", FlightIDs: []string{"f1"}}

	_, message := composeBookingCreated(booking, nil)

	assert.Equal(t, "Bạn đã đặt thành công vé với mã đặt chỗ ZZ9Y8X.", message)
}

func TestComposeTierUpgraded(t *testing.T) {
	title, message := composeTierUpgraded(loyalty.TierGold, 2100)

	assert.Equal(t, "Chúc mừng! Bạn đã lên hạng Vàng", title)
	assert.Equal(t, "Bạn đã đạt 2100 điểm và được nâng cấp lên hạng Vàng. Hãy tận hưởng các ưu đãi đặc biệt!", message)
}

func TestComposePointsEarned(t *testing.T) {
	title, message := composePointsEarned(250, 650)

	assert.Equal(t, "Bạn được cộng 250 điểm", title)
	assert.Equal(t, "Bạn đã được cộng 250 điểm từ đặt vé. Tổng điểm hiện tại: 650 điểm.", message)
}
