package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinGuests = 1

	MaxNameLength  = 120
	MaxEmailLength = 254
	MaxPhoneLength = 32
	MaxPlaceLength = 120
)
