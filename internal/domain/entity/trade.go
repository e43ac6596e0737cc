package entity

import (
	"time"

	"tradevalues/internal/domain/value"
)

// Proposal is a pair of item selections. Duplicates are allowed on both sides.
type Proposal struct {
	Offer []Item
	Want  []Item
}

// Tally counts distinct voters per verdict.
type Tally struct {
	Win  int64
	Fair int64
	Loss int64
}

func (t Tally) Total() int64 {
	return t.Win + t.Fair + t.Loss
}

func (t Tally) Count(v value.Vote) int64 {
	switch v {
	case value.VoteWin:
		return t.Win
	case value.VoteFair:
		return t.Fair
	case value.VoteLoss:
		return t.Loss
	default:
		return 0
	}
}

// Add returns a copy with the counter for v moved by delta.
func (t Tally) Add(v value.Vote, delta int64) Tally {
	switch v {
	case value.VoteWin:
		t.Win += delta
	case value.VoteFair:
		t.Fair += delta
	case value.VoteLoss:
		t.Loss += delta
	}

	return t
}

// Trade is a submitted proposal open for community voting. Offer and Want are
// frozen copies taken at submission time.
type Trade struct {
	ID        value.TradeID
	GameID    value.GameID
	AuthorID  value.UserID
	Offer     []Item
	Want      []Item
	Tally     Tally
	Version   int64
	CreatedAt time.Time

	// VoterChoice is the requesting viewer's vote, nil when they have none.
	VoterChoice *value.Vote
}

func (t Trade) Proposal() Proposal {
	return Proposal{Offer: t.Offer, Want: t.Want}
}

// VoteChange is an atomic tally update guarded by the version the caller read.
type VoteChange struct {
	TradeID         value.TradeID
	VoterID         value.UserID
	Vote            value.Vote
	Tally           Tally
	ExpectedVersion int64
}
