package models

import "time"

// RaffleSummary is what the results page renders.
type RaffleSummary struct {
	RaffleID       string        `json:"raffleId"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Status         RaffleStatus  `json:"status"`
	TotalOwners    int           `json:"totalOwners"`
	WinnersCount   int           `json:"winnersCount"`
	RaffleDate     time.Time     `json:"raffleDate"`
	RandomSource   string        `json:"randomSource"`
	SeedCommitment string        `json:"seedCommitment,omitempty"`
	Seed           string        `json:"seed,omitempty"`
	Winners        []WinnerEntry `json:"winners"`
}

// WinnerEntry is one row of the winners list.
type WinnerEntry struct {
	Position     int    `json:"position"`
	Address      string `json:"address"`
	ShortAddress string `json:"shortAddress"`
}

// RaffleReport is the JSON file written by a local simulated draw.
type RaffleReport struct {
	Winners      []string  `json:"winners"`
	Timestamp    time.Time `json:"timestamp"`
	TotalOwners  int       `json:"totalOwners"`
	WinnerCount  int       `json:"winnerCount"`
	RandomSource string    `json:"randomSource"`
	Seed         string    `json:"seed,omitempty"`
}
