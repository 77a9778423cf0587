package models

// EmailTaskPayload is the payload of an async email task.
type EmailTaskPayload struct {
	Kind      string `json:"kind"` // "booking_requested" | "booking_decided"
	BookingID string `json:"bookingId"`
}
