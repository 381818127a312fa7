package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/service"
)

type CategoryHandler struct {
	catalog      *service.CatalogService
	requireAdmin func(http.Handler) http.Handler
}

func NewCategoryHandler(catalog *service.CatalogService, requireAdmin func(http.Handler) http.Handler) *CategoryHandler {
	return &CategoryHandler{catalog: catalog, requireAdmin: requireAdmin}
}

func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/", h.Create)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list categories")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": categories,
		"total": len(categories),
	})
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, products, err := h.catalog.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           category.ID,
		"name":         category.Name,
		"productCount": category.ProductCount,
		"createdAt":    category.CreatedAt,
		"updatedAt":    category.UpdatedAt,
		"products":     products,
	})
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	category, err := h.catalog.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Info().Str("categoryId", category.ID).Str("name", category.Name).Msg("category created")
	writeJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.catalog.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	log.Info().Str("categoryId", id).Msg("category deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
