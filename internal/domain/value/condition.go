package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"tradevalues/pkg/errcodes"
)

// Condition is the direction of a price alert.
type Condition string

const (
	ConditionAbove Condition = "above"
	ConditionBelow Condition = "below"
)

func ParseCondition(s string) (Condition, error) {
	switch c := Condition(s); c {
	case ConditionAbove, ConditionBelow:
		return c, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown condition %q", s),
			failure.WithCode(errcodes.InvalidCondition),
			failure.WithDescription("condition must be above or below"),
		)
	}
}

// Met reports whether current satisfies the condition against target.
// Both bounds are inclusive.
func (c Condition) Met(current, target int64) bool {
	switch c {
	case ConditionAbove:
		return current >= target
	case ConditionBelow:
		return current <= target
	default:
		return false
	}
}

func (c Condition) String() string {
	return string(c)
}
