package engine

import (
	"crypto/rand"
	"errors"
	"strings"
)

var ErrEmptyTeamName = errors.New("both team names are required")
var ErrDuplicateTeamName = errors.New("team names must differ")

// Teams holds both names as entered plus the drawn turn order.
type Teams struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	First  string `json:"first_team"`
	Second string `json:"second_team"`
}

func (t Teams) Resolve(slot Slot) string {
	if slot == SlotFirst {
		return t.First
	}
	return t.Second
}

// Drawn reports whether the turn order is already settled.
func (t Teams) Drawn() bool {
	return t.First != "" && t.Second != ""
}

// ValidateTeams checks names after trimming but never rewrites them.
func ValidateTeams(team1, team2 string) error {
	a, b := strings.TrimSpace(team1), strings.TrimSpace(team2)
	if a == "" || b == "" {
		return ErrEmptyTeamName
	}
	if a == b {
		return ErrDuplicateTeamName
	}
	return nil
}

// Coin returns 0 or 1 with equal probability.
type Coin interface {
	Flip() int
}

type CoinFunc func() int

func (f CoinFunc) Flip() int { return f() }

type CryptoCoin struct{}

func (CryptoCoin) Flip() int {
	var b [1]byte
	_, _ = rand.Read(b[:]) // never fails since go1.24
	return int(b[0] & 1)
}

// Draw settles which team acts on first-slot steps.
func Draw(coin Coin, team1, team2 string) Teams {
	names := [2]string{team1, team2}
	idx := coin.Flip() & 1
	return Teams{
		Team1:  team1,
		Team2:  team2,
		First:  names[idx],
		Second: names[1-idx],
	}
}
