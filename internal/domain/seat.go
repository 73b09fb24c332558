package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type SeatID string

const (
	SeatRows    = 30
	SeatLetters = "ABCDEF"
	SeatCount   = SeatRows * len(SeatLetters)
)

func MakeSeatID(row int, letter byte) SeatID {
	return SeatID(fmt.Sprintf("%d%c", row, letter))
}

// ParseSeatID validates a seat id against the fixed key space
// (rows 1..30, letters A..F). Lowercase letters are accepted.
func ParseSeatID(raw string) (SeatID, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) < 2 {
		return "", fmt.Errorf("seat %q: too short", raw)
	}
	letter := s[len(s)-1]
	if !strings.ContainsRune(SeatLetters, rune(letter)) {
		return "", fmt.Errorf("seat %q: letter must be one of %s", raw, SeatLetters)
	}
	row, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || row < 1 || row > SeatRows {
		return "", fmt.Errorf("seat %q: row must be 1..%d", raw, SeatRows)
	}
	return MakeSeatID(row, letter), nil
}
