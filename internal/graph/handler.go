package graph

import (
	"net/http"
	"strings"

	"github.com/graphql-go/handler"
	"go.uber.org/zap"

	"crm-graphql/internal/auth"
	"crm-graphql/internal/crm"
)

// Handler resolves the bearer token into a caller identity before the
// schema executes. By default a bad or expired token degrades to an
// anonymous context (scoped operations then fail their ownership
// checks); strict mode rejects it outright with 401.
type Handler struct {
	tokens *auth.Tokens
	strict bool
	log    *zap.Logger
	gql    *handler.Handler
}

func NewHandler(svc *crm.Service, tokens *auth.Tokens, strict bool, log *zap.Logger) (*Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}
	return &Handler{
		tokens: tokens,
		strict: strict,
		log:    log,
		gql: handler.New(&handler.Config{
			Schema:   &schema,
			Pretty:   true,
			GraphiQL: true,
		}),
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if raw != "" {
		claims, err := h.tokens.Verify(raw)
		if err != nil {
			if h.strict {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}
			h.log.Debug("bearer token rejected, continuing anonymous", zap.Error(err))
		} else {
			ctx = auth.WithCaller(ctx, claims)
		}
	}
	h.gql.ContextHandler(ctx, w, r)
}
