package contextx

import (
	"context"
	"fmt"
	"strings"
)

// UserID identifies the caller. It is issued by the upstream auth proxy and
// treated as an opaque string here.
type UserID string

type contextKeyUserID struct{}

func (u UserID) String() string {
	return string(u)
}

func (u UserID) IsZero() bool {
	return strings.TrimSpace(string(u)) == ""
}

func WithUserID(ctx context.Context, userID UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

func UserIDFromContext(ctx context.Context) (UserID, error) {
	userID, ok := ctx.Value(contextKeyUserID{}).(UserID)
	if !ok || userID.IsZero() {
		return "", fmt.Errorf("user id: %w", ErrNoValue)
	}

	return userID, nil
}
