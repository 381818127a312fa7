package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/middleware"
	"github.com/bostel-e/christshop/internal/model"
	"github.com/bostel-e/christshop/internal/service"
)

type ProductHandler struct {
	catalog      *service.CatalogService
	requireAdmin func(http.Handler) http.Handler
}

func NewProductHandler(catalog *service.CatalogService, requireAdmin func(http.Handler) http.Handler) *ProductHandler {
	return &ProductHandler{catalog: catalog, requireAdmin: requireAdmin}
}

// Routes exposes reads publicly for the storefront; mutations need an admin
// session.
func (h *ProductHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.ProductFilter{
		CategoryID: r.URL.Query().Get("categoryId"),
		Search:     r.URL.Query().Get("search"),
	}
	switch r.URL.Query().Get("inStock") {
	case "true":
		v := true
		filter.InStock = &v
	case "false":
		v := false
		filter.InStock = &v
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": products,
		"total": len(products),
	})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description" validate:"required"`
		Price       float64 `json:"price" validate:"required,gt=0"`
		Image       *string `json:"image"`
		InStock     *bool   `json:"inStock"`
		CategoryID  string  `json:"categoryId" validate:"required"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := h.catalog.CreateProduct(r.Context(), model.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		InStock:     inStock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	event := log.Info().Str("productId", product.ID)
	if admin := middleware.GetAdmin(r.Context()); admin != nil {
		event = event.Str("adminId", admin.ID)
	}
	event.Msg("product created")

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price" validate:"omitempty,gt=0"`
		Image       *string  `json:"image"`
		InStock     *bool    `json:"inStock"`
		CategoryID  *string  `json:"categoryId"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), model.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		InStock:     req.InStock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	log.Info().Str("productId", id).Msg("product deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
