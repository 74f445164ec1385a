package user

import "time"

type Type string

const (
	TypeTraveler  Type = "Traveler"
	TypeCommunity Type = "Community"
)

func (t Type) Valid() bool {
	return t == TypeTraveler || t == TypeCommunity
}

type User struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Password  string // bcrypt hash
	Type      Type
	CreatedAt time.Time
}
