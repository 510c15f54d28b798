package entity

import (
	"time"

	"github.com/google/uuid"
)

// MovieSession is a scheduled screening of a movie in a room over a time
// interval.
type MovieSession struct {
	Base
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	MovieID   uuid.UUID `db:"movie_id"`
	RoomID    uuid.UUID `db:"room_id"`
}
