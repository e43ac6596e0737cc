package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/domain"
)

func TestAppError(t *testing.T) {
	t.Parallel()

	rq := require.New(t)

	cause := errors.New("connection refused")
	err := fmt.Errorf("repo.Get: %w", domain.WrapError(cause, "failed to get item"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "repo.Get: failed to get item: connection refused")

	rq.False(domain.IsAppError(cause))
}
