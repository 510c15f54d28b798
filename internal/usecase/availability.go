package usecase

import (
	"sort"

	"github.com/ArtyoMKo/cinema-theater-backend/internal/data/entity"
)

// ComputeAvailability derives the reserved and free seat numbers of a
// session from the room capacity and its current reservations.
//
// reserved is the distinct seat values across the reservations, ascending.
// available is 1..seatCount minus reserved, ascending. Reserved seats
// above seatCount stay in reserved and simply never appear in available;
// the write path is responsible for keeping such rows out, the read path
// tolerates them.
//
// Pure function. Callers recompute on every read so the result always
// reflects the reservations visible in the same transaction.
func ComputeAvailability(seatCount int, reservations []*entity.Reservation) (reserved []int, available []int) {
	taken := make(map[int]bool, len(reservations))
	for _, reservation := range reservations {
		taken[reservation.Seat] = true
	}

	reserved = make([]int, 0, len(taken))
	for seat := range taken {
		reserved = append(reserved, seat)
	}
	sort.Ints(reserved)

	available = make([]int, 0, seatCount)
	for seat := 1; seat <= seatCount; seat++ {
		if !taken[seat] {
			available = append(available, seat)
		}
	}

	return reserved, available
}
