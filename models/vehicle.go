package models

import "time"

// Availability values controlled by the owner.
const (
	VehicleAvailable = "Available"
	VehicleBooked    = "Booked"
)

// Review status values controlled by the admin. A listing that is not
// approved is never shown in customer search, whatever its availability.
const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// Vehicle is an owner-submitted listing.
type Vehicle struct {
	ID          string   `bson:"id" json:"_id"`
	OwnerID     string   `bson:"owner_id" json:"ownerId"`
	OwnerName   string   `bson:"owner_name" json:"ownerName"`
	Phone       string   `bson:"phone" json:"phone"`
	Name        string   `bson:"name" json:"name"`
	Type        string   `bson:"type" json:"type"`
	Fuel        string   `bson:"fuel" json:"fuel"`
	PricePerDay float64  `bson:"price_per_day" json:"pricePerDay"`
	Location    string   `bson:"location" json:"location"`
	Description string   `bson:"description" json:"description"`
	Image       string   `bson:"image" json:"image"`
	Images      []string `bson:"images,omitempty" json:"images,omitempty"`

	// Verification documents (Cloudinary URLs).
	RCBookURL        string `bson:"rc_book_url,omitempty" json:"rcBookUrl,omitempty"`
	InsuranceURL     string `bson:"insurance_url,omitempty" json:"insuranceUrl,omitempty"`
	PollutionURL     string `bson:"pollution_url,omitempty" json:"pollutionUrl,omitempty"`
	VehiclePermitURL string `bson:"vehicle_permit_url,omitempty" json:"vehiclePermitUrl,omitempty"`

	Status       string    `bson:"status" json:"status"`              // Available | Booked
	ReviewStatus string    `bson:"review_status" json:"reviewStatus"` // pending | approved | rejected
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// VehicleSearchCriteria narrows public vehicle queries. Empty fields match
// everything.
type VehicleSearchCriteria struct {
	Type     string `form:"type"`
	Location string `form:"location"`
	Date     string `form:"date"`
}

// ReviewStats is the admin dashboard summary.
type ReviewStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
