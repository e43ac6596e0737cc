package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain/value"
	"tradevalues/pkg/errcodes"
)

func TestParseVote(t *testing.T) {
	t.Parallel()

	for _, v := range value.Votes() {
		got, err := value.ParseVote(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	for _, raw := range []string{"", "WIN", "retract", "none"} {
		_, err := value.ParseVote(raw)
		require.True(t, failure.IsInvalidArgumentError(err), raw)
		require.Equal(t, errcodes.InvalidVote, failure.Code(err))
	}
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	tests := map[value.Status]string{
		value.StatusBigWin:     "BIG WIN",
		value.StatusWin:        "WIN",
		value.StatusFair:       "FAIR",
		value.StatusLoss:       "LOSS",
		value.StatusBigLoss:    "BIG LOSS",
		value.StatusIncomplete: "INCOMPLETE",
	}

	for status, label := range tests {
		require.Equal(t, label, status.Label())
	}
}

func TestCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		condition value.Condition
		current   int64
		target    int64
		want      bool
	}{
		{name: "above reached", condition: value.ConditionAbove, current: 100, target: 100, want: true},
		{name: "above exceeded", condition: value.ConditionAbove, current: 150, target: 100, want: true},
		{name: "above not reached", condition: value.ConditionAbove, current: 99, target: 100, want: false},
		{name: "below reached", condition: value.ConditionBelow, current: 100, target: 100, want: true},
		{name: "below under", condition: value.ConditionBelow, current: 10, target: 100, want: true},
		{name: "below not reached", condition: value.ConditionBelow, current: 101, target: 100, want: false},
		{name: "unknown", condition: value.Condition("sideways"), current: 100, target: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.condition.Met(tt.current, tt.target))
		})
	}

	_, err := value.ParseCondition("sideways")
	require.Equal(t, errcodes.InvalidCondition, failure.Code(err))

	c, err := value.ParseCondition("below")
	require.NoError(t, err)
	require.Equal(t, value.ConditionBelow, c)
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:             "0",
		999:           "999",
		1_000:         "1.0K",
		1_250:         "1.2K",
		15_500:        "15.5K",
		999_999:       "1000.0K",
		1_000_000:     "1.0M",
		2_340_000:     "2.3M",
		1_000_000_000: "1.0B",
		-5_000:        "-5000",
	}

	for in, want := range tests {
		require.Equal(t, want, value.FormatValue(in), in)
	}
}

func TestIDs(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	tradeID := value.NewTradeID()
	parsed, err := value.ParseTradeID(tradeID.String())
	rq.NoError(err)
	rq.Equal(tradeID, parsed)

	_, err = value.ParseTradeID("not-a-ulid")
	rq.Equal(errcodes.InvalidTradeID, failure.Code(err))

	_, err = value.ParseAlertID("")
	rq.Equal(errcodes.InvalidAlertID, failure.Code(err))

	gameID, err := value.ParseGameID("  adopt-me ")
	rq.NoError(err)
	rq.Equal(value.GameID("adopt-me"), gameID)

	_, err = value.ParseItemID("   ")
	rq.Equal(errcodes.InvalidItemID, failure.Code(err))

	rq.Equal(value.TrendStable, value.ParseTrend("sideways"))
	rq.Equal(value.TrendRising, value.ParseTrend("rising"))
}
