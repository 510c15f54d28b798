package entity

import "github.com/google/uuid"

// Reservation is a claim on one seat number within one session, bound to
// a contact. (session_id, seat) is unique per the reservations schema.
type Reservation struct {
	Base
	Seat      int       `db:"seat"`
	Contact   string    `db:"contact"`
	SessionID uuid.UUID `db:"session_id"`
}
