package listing

import (
	"fmt"
	"net/http"

	"github.com/mpetrov/chathub/internal/repository"
)

// CategoryHandler serves the category listing endpoint.
type CategoryHandler struct {
	categories repository.CategoryRepository
}

func NewCategoryHandler(categories repository.CategoryRepository) http.Handler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	categories, err := h.categories.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list categories: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
