package submit_booking

import "github.com/zanaya/ZNY-BookingService/internal/service/pricing"

// Response результат принятого бронирования
type Response struct {
	Customer string
	Religion string
	Quote    pricing.Quote
}
