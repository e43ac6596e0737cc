package req

import (
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"tradevalues/pkg/errcodes"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	if err := validate.StructCtx(r.Context(), dest); err != nil {
		return failure.NewInvalidArgumentError(
			"validation error",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(err.Error()),
		)
	}

	return nil
}

// Paging reads limit and offset query parameters. Missing values fall back to
// DefaultLimit and 0; limit is capped at MaxLimit.
func Paging(r *http.Request) (limit, offset int, err error) {
	limit, err = queryInt(r, "limit", DefaultLimit)
	if err != nil {
		return 0, 0, err
	}

	offset, err = queryInt(r, "offset", 0)
	if err != nil {
		return 0, 0, err
	}

	if limit <= 0 || offset < 0 {
		return 0, 0, failure.NewInvalidArgumentError(
			"invalid paging",
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription("limit must be positive and offset non-negative"),
		)
	}

	return min(limit, MaxLimit), offset, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentError(
			fmt.Errorf("strconv.Atoi(%s): %w", name, err).Error(),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(name+" must be an integer"),
		)
	}

	return v, nil
}
