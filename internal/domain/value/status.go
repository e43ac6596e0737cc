package value

// Status is the fairness band of a trade.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusBigWin     Status = "big_win"
	StatusWin        Status = "win"
	StatusFair       Status = "fair"
	StatusLoss       Status = "loss"
	StatusBigLoss    Status = "big_loss"
)

func (s Status) String() string {
	return string(s)
}

// Label is the human readable badge for the status.
func (s Status) Label() string {
	switch s {
	case StatusBigWin:
		return "BIG WIN"
	case StatusWin:
		return "WIN"
	case StatusFair:
		return "FAIR"
	case StatusLoss:
		return "LOSS"
	case StatusBigLoss:
		return "BIG LOSS"
	default:
		return "INCOMPLETE"
	}
}
