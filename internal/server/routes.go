package server

import (
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"tradevalues/internal/domain/value"
	"tradevalues/pkg/contextx"
	"tradevalues/pkg/errcodes"
	"tradevalues/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// anonymous zone
			r.Get("/games", handler(s.getV1Games))
			r.Route("/games/{gameID}/items", func(r chi.Router) {
				r.Get("/", handler(s.getV1GameItems))
				r.Get("/{itemID}", handler(s.getV1GameItem))
				r.Get("/{itemID}/history", handler(s.getV1GameItemHistory))
			})
			r.Post("/calculator", handler(s.postV1Calculator))
			r.Get("/trades", handler(s.getV1Trades))
			r.Get("/trades/{tradeID}", handler(s.getV1Trade))

			// user zone
			r.Group(func(r chi.Router) {
				r.Use(requireUser)

				r.Post("/trades", handler(s.postV1Trades))
				r.Post("/trades/{tradeID}/votes", handler(s.postV1TradeVotes))

				r.Route("/inventory", func(r chi.Router) {
					r.Get("/", handler(s.getV1Inventory))
					r.Delete("/", handler(s.deleteV1Inventory))
					r.Post("/items", handler(s.postV1InventoryItems))
					r.Delete("/items", handler(s.deleteV1InventoryItems))
					r.Get("/items/{gameID}/{itemID}", handler(s.getV1InventoryItem))
				})

				r.Route("/alerts", func(r chi.Router) {
					r.Get("/", handler(s.getV1Alerts))
					r.Post("/", handler(s.postV1Alerts))
					r.Patch("/{alertID}", handler(s.patchV1Alert))
					r.Delete("/{alertID}", handler(s.deleteV1Alert))
				})
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := contextx.UserIDFromContext(r.Context()); err != nil {
			reply.Error(r.Context(), w, failure.NewUnauthorizedError(
				err.Error(),
				failure.WithCode(errcodes.Unauthorized),
				failure.WithDescription("X-User-Id header is required"),
			))

			return
		}

		next.ServeHTTP(w, r)
	})
}

// userID returns the caller set by middlewarex.UserID, empty for anonymous
// requests.
func userID(r *http.Request) value.UserID {
	id, _ := contextx.UserIDFromContext(r.Context())

	return value.UserID(id)
}
