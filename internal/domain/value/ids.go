package value

import (
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/oklog/ulid/v2"

	"tradevalues/pkg/errcodes"
)

const maxKeyLen = 128

type (
	GameID  string
	ItemID  string
	UserID  string
	TradeID string
	AlertID string
)

func ParseGameID(s string) (GameID, error) {
	k, err := parseKey(s)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("game id: %w", err),
			failure.WithCode(errcodes.InvalidGameID),
		)
	}

	return GameID(k), nil
}

func ParseItemID(s string) (ItemID, error) {
	k, err := parseKey(s)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("item id: %w", err),
			failure.WithCode(errcodes.InvalidItemID),
		)
	}

	return ItemID(k), nil
}

func NewTradeID() TradeID {
	return TradeID(ulid.Make().String())
}

func ParseTradeID(s string) (TradeID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("ulid.ParseStrict: %w", err),
			failure.WithCode(errcodes.InvalidTradeID),
		)
	}

	return TradeID(id.String()), nil
}

func NewAlertID() AlertID {
	return AlertID(ulid.Make().String())
}

func ParseAlertID(s string) (AlertID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("ulid.ParseStrict: %w", err),
			failure.WithCode(errcodes.InvalidAlertID),
		)
	}

	return AlertID(id.String()), nil
}

func (id GameID) String() string  { return string(id) }
func (id ItemID) String() string  { return string(id) }
func (id UserID) String() string  { return string(id) }
func (id TradeID) String() string { return string(id) }
func (id AlertID) String() string { return string(id) }

func parseKey(s string) (string, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return "", fmt.Errorf("empty")
	case len(s) > maxKeyLen:
		return "", fmt.Errorf("longer than %d", maxKeyLen)
	}

	return s, nil
}
