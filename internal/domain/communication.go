package domain

import "time"

type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Communication is one row in the message audit log. Every webhook we
// receive and every reply we send is recorded, whether or not the caller
// is a registered user.
type Communication struct {
	ID          string
	UserID      *int64
	PhoneNumber string
	Channel     Channel
	Direction   Direction
	Content     string
	ExternalID  string
	Status      string
	CreatedAt   time.Time
}
