package export

import (
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/mpetrov/chathub/internal/auth"
	"github.com/mpetrov/chathub/internal/listing"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves filtered server listings as spreadsheet downloads.
type Handler struct {
	service *Service
}

func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := listing.ParamsFromQuery(r.URL.Query())
	identity := auth.IdentityFromContext(r.Context())

	workbook, err := h.service.BuildWorkbook(r.Context(), params, identity)
	if err != nil {
		listing.WriteError(w, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("servers-%s.xlsx", uuid.NewString())
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := workbook.WriteTo(w); err != nil {
		// Headers are already sent; nothing useful can reach the client now.
		log.Printf("[EXPORT] failed to stream workbook: %v", err)
	}
}
