package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bostel-e/christshop/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
	requireAdmin  func(http.Handler) http.Handler
}

func NewNotificationHandler(
	notifications *service.NotificationService,
	requireAdmin func(http.Handler) http.Handler,
) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, requireAdmin: requireAdmin}
}

func (h *NotificationHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(h.requireAdmin)
	r.Post("/", h.BuildForProduct)

	return r
}

// BuildForProduct returns a prefilled WhatsApp link per registered customer.
// The admin's browser opens the chats; nothing is sent from here.
func (h *NotificationHandler) BuildForProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId" validate:"required"`
	}
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	product, notifications, err := h.notifications.BuildForProduct(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Info().
		Str("productId", product.ID).
		Int("customers", len(notifications)).
		Msg("notification batch built")

	writeJSON(w, http.StatusOK, map[string]any{
		"product":       product,
		"notifications": notifications,
		"count":         len(notifications),
	})
}
