package sos

// Request carries the caller's position. Pointers tell a missing coordinate
// apart from the equator or the prime meridian.
type Request struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// Result summarises one dispatch.
type Result struct {
	AlertID       string
	TotalContacts int
	Successful    int
	Failed        int
}
