package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/domain"
	"github.com/mpetrov/chathub/internal/repository"
)

// Handler serves the server listing endpoint.
type Handler struct {
	servers repository.ServerRepository
}

func NewHTTPHandler(servers repository.ServerRepository) http.Handler {
	return &Handler{servers: servers}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot, err := h.servers.Snapshot(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list servers: %v", err), http.StatusInternalServerError)
		return
	}

	params := ParamsFromQuery(r.URL.Query())
	identity := auth.IdentityFromContext(r.Context())

	outcome, err := Apply(params, identity, snapshot)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderServers(outcome))
}

// WriteError maps pipeline failures onto HTTP statuses: missing
// authentication to 401, invalid query parameters to 400 with the detail as
// body, anything else to 500.
func WriteError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidQueryError
	switch {
	case errors.Is(err, domain.ErrAuthenticationRequired):
		http.Error(w, "authentication required", http.StatusUnauthorized)
	case errors.As(err, &invalid):
		http.Error(w, invalid.Detail, http.StatusBadRequest)
	default:
		http.Error(w, fmt.Sprintf("list servers: %v", err), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
