package domain

import (
	"sync"
	"time"
)

// Flight owns its seat map. BookSeat is the only mutation and the commit
// point for concurrent bookings targeting the same seat.
type Flight struct {
	Number        string
	Origin        Airport
	Destination   Airport
	DepartureTime time.Time
	ArrivalTime   time.Time
	FareCents     int64

	mu    sync.Mutex
	seats map[SeatID]bool
}

func NewFlight(number string, origin, destination Airport, departure, arrival time.Time, fareCents int64) *Flight {
	seats := make(map[SeatID]bool, SeatCount)
	for row := 1; row <= SeatRows; row++ {
		for i := 0; i < len(SeatLetters); i++ {
			seats[MakeSeatID(row, SeatLetters[i])] = true
		}
	}
	return &Flight{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		FareCents:     fareCents,
		seats:         seats,
	}
}

// IsSeatAvailable reports false for unknown seat ids.
func (f *Flight) IsSeatAvailable(seat SeatID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seats[seat]
}

// BookSeat marks the seat unavailable and returns true if it was available.
// Unknown or already taken seats return false and leave the map untouched.
// Seats never revert to available.
func (f *Flight) BookSeat(seat SeatID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.seats[seat] {
		return false
	}
	f.seats[seat] = false
	return true
}

// AvailableSeats returns a snapshot ordered by row then letter.
func (f *Flight) AvailableSeats() []SeatID {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SeatID, 0, len(f.seats))
	for row := 1; row <= SeatRows; row++ {
		for i := 0; i < len(SeatLetters); i++ {
			id := MakeSeatID(row, SeatLetters[i])
			if f.seats[id] {
				out = append(out, id)
			}
		}
	}
	return out
}

func (f *Flight) AvailableSeatCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, available := range f.seats {
		if available {
			n++
		}
	}
	return n
}

// FlightSummary is the read model served to clients and cached in redis.
type FlightSummary struct {
	Number         string    `json:"number"`
	Origin         Airport   `json:"origin"`
	Destination    Airport   `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	FareCents      int64     `json:"fare_cents"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
}

func (f *Flight) Summary() FlightSummary {
	return FlightSummary{
		Number:         f.Number,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		FareCents:      f.FareCents,
		TotalSeats:     SeatCount,
		AvailableSeats: f.AvailableSeatCount(),
	}
}
