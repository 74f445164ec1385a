package lovedone

import "time"

// LovedOne is an emergency contact that receives SOS mail.
type LovedOne struct {
	ID        int
	UserID    int
	Name      string
	Email     string
	CreatedAt time.Time
}
