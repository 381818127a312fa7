package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/service"
)

type CustomerHandler struct {
	customers    *service.CustomerService
	requireAdmin func(http.Handler) http.Handler
}

func NewCustomerHandler(customers *service.CustomerService, requireAdmin func(http.Handler) http.Handler) *CustomerHandler {
	return &CustomerHandler{customers: customers, requireAdmin: requireAdmin}
}

// Routes keeps registration public so the storefront widget can post
// opt-ins; listing and deletion stay behind the admin session.
func (h *CustomerHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Register)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Phone string `json:"phone" validate:"required,min=10,phone"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer, created, err := h.customers.Register(r.Context(), req.Name, req.Phone)
	if err != nil {
		log.Error().Err(err).Msg("customer registration failed")
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		log.Info().Str("customerId", customer.ID).Msg("customer registered")
	}

	writeJSON(w, status, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list customers")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": customers,
		"total": len(customers),
	})
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.customers.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	log.Info().Str("customerId", id).Msg("customer deleted")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
