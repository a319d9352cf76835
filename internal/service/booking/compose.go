package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/duchauuuuu/flight-backend/internal/domain"
	"github.com/duchauuuuu/flight-backend/internal/service/loyalty"
)

// Notification content generation. Only the payloads are built here; storage
// and delivery belong to the notification store and the worker.

var weekdayNames = [7]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

func formatDeparture(t time.Time) string {
	return fmt.Sprintf("%02d:%02d • %s, %02d/%02d/%d",
		t.Hour(), t.Minute(), weekdayNames[int(t.Weekday())], t.Day(), int(t.Month()), t.Year())
}

// composeBookingCreated builds the "booking created" notification. Multi-city
// bookings with more than one resolved flight get one aggregated message with
// the full ordered route; everything else shows the first flight's route.
// Refs that never resolved contribute nothing.
func composeBookingCreated(b *domain.Booking, refs []domain.FlightRef) (title, message string) {
	title = "Đặt vé thành công"

	flightText := "vé"
	if len(b.FlightIDs) > 1 {
		flightText = fmt.Sprintf("%d vé", len(b.FlightIDs))
	}
	message = fmt.Sprintf("Bạn đã đặt thành công %s với mã đặt chỗ %s.", flightText, b.BookingCode)

	var flights []*domain.Flight
	for _, ref := range refs {
		if f, ok := ref.Flight(); ok {
			flights = append(flights, f)
		}
	}
	if len(flights) == 0 {
		return title, message
	}

	first := flights[0]
	if b.TripType == domain.TripMultiCity && len(flights) > 1 {
		route := make([]string, 0, len(flights)+1)
		route = append(route, first.From)
		for _, f := range flights {
			route = append(route, f.To)
		}
		message += fmt.Sprintf(" Chuyến bay nhiều thành phố %s (%d chặng), khởi hành %s.",
			strings.Join(route, " → "), len(flights), formatDeparture(first.Departure))
	} else {
		message += fmt.Sprintf(" Chuyến bay %s → %s, khởi hành %s.",
			first.From, first.To, formatDeparture(first.Departure))
	}
	return title, message
}

func composeTierUpgraded(tier loyalty.Tier, points int) (title, message string) {
	title = fmt.Sprintf("Chúc mừng! Bạn đã lên hạng %s", tier)
	message = fmt.Sprintf("Bạn đã đạt %d điểm và được nâng cấp lên hạng %s. Hãy tận hưởng các ưu đãi đặc biệt!", points, tier)
	return title, message
}

func composePointsEarned(added, total int) (title, message string) {
	title = fmt.Sprintf("Bạn được cộng %d điểm", added)
	message = fmt.Sprintf("Bạn đã được cộng %d điểm từ đặt vé. Tổng điểm hiện tại: %d điểm.", added, total)
	return title, message
}
