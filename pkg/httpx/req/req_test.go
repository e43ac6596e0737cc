package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/httpx/req"
)

type voteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=win fair loss"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		want    string
		invalid bool
	}{
		{name: "Valid", body: `{"vote":"fair"}`, want: "fair"},
		{name: "Broken JSON", body: `{"vote":`, invalid: true},
		{name: "Missing field", body: `{}`, invalid: true},
		{name: "Unknown vote", body: `{"vote":"maybe"}`, invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest voteRequest

			err := req.Read(r, &dest)
			if tc.invalid {
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(errcodes.ValidationError, failure.Code(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, dest.Vote)
		})
	}
}

func TestPaging(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		query   string
		limit   int
		offset  int
		invalid bool
	}{
		{name: "Defaults", query: "", limit: req.DefaultLimit, offset: 0},
		{name: "Explicit", query: "?limit=10&offset=20", limit: 10, offset: 20},
		{name: "Capped", query: "?limit=100000", limit: req.MaxLimit, offset: 0},
		{name: "Zero limit", query: "?limit=0", invalid: true},
		{name: "Negative offset", query: "?offset=-1", invalid: true},
		{name: "Garbage", query: "?limit=ten", invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/"+tc.query, http.NoBody)

			limit, offset, err := req.Paging(r)
			if tc.invalid {
				rq.True(failure.IsInvalidArgumentError(err))
				rq.Equal(errcodes.InvalidPaging, failure.Code(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.limit, limit)
			rq.Equal(tc.offset, offset)
		})
	}
}
