package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/pkg/errcodes"
)

// Vote is a community verdict on a trade, seen from the offering side.
type Vote string

const (
	VoteWin  Vote = "win"
	VoteFair Vote = "fair"
	VoteLoss Vote = "loss"
)

// Votes lists every vote in tie-break order.
func Votes() []Vote {
	return []Vote{VoteWin, VoteFair, VoteLoss}
}

func ParseVote(s string) (Vote, error) {
	v := Vote(s)
	if !v.Valid() {
		return "", InvalidVoteError(v)
	}

	return v, nil
}

func InvalidVoteError(v Vote) error {
	return failure.NewInvalidArgumentError(
		fmt.Sprintf("unknown vote %q", string(v)),
		failure.WithCode(errcodes.InvalidVote),
		failure.WithDescription("vote must be one of win, fair, loss"),
	)
}

func (v Vote) Valid() bool {
	switch v {
	case VoteWin, VoteFair, VoteLoss:
		return true
	default:
		return false
	}
}

func (v Vote) String() string {
	return string(v)
}
