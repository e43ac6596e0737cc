package voting

import (
	"tradevalues/internal/domain/entity"
	"tradevalues/internal/domain/value"
)

// Summary is the derived view of a tally.
type Summary struct {
	Total    int64
	Win      int
	Fair     int
	Loss     int
	Majority value.Vote
}

// Percentage returns round(100*count/total) with halves rounded up, or 0 for
// an empty tally.
func Percentage(t entity.Tally, v value.Vote) int {
	total := t.Total()
	if total <= 0 {
		return 0
	}

	return int((200*t.Count(v) + total) / (2 * total))
}

// Majority returns the leading vote. Ties resolve win, then fair, then loss.
func Majority(t entity.Tally) value.Vote {
	switch {
	case t.Win >= t.Fair && t.Win >= t.Loss:
		return value.VoteWin
	case t.Fair >= t.Loss:
		return value.VoteFair
	default:
		return value.VoteLoss
	}
}

func Summarize(t entity.Tally) Summary {
	return Summary{
		Total:    t.Total(),
		Win:      Percentage(t, value.VoteWin),
		Fair:     Percentage(t, value.VoteFair),
		Loss:     Percentage(t, value.VoteLoss),
		Majority: Majority(t),
	}
}

// Transition applies a voter's new vote given their previous one. A repeated
// vote leaves the tally untouched and reports changed == false. There is no
// transition back to having no vote.
func Transition(t entity.Tally, prev *value.Vote, next value.Vote) (entity.Tally, bool) {
	if prev != nil && *prev == next {
		return t, false
	}

	if prev != nil {
		t = t.Add(*prev, -1)
	}

	return t.Add(next, 1), true
}
