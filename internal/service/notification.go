package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bostel-e/christshop/internal/model"
)

// Notification is a ready-to-send WhatsApp message for one customer. The
// server only assembles the message and deep link; opening the chat stays
// with the admin's browser.
type Notification struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	Link         string `json:"link"`
}

// NotificationService builds per-customer product announcements.
type NotificationService struct {
	catalog      *CatalogService
	customers    *CustomerService
	storeBaseURL string
}

func NewNotificationService(
	catalog *CatalogService,
	customers *CustomerService,
	storeBaseURL string,
) *NotificationService {
	return &NotificationService{
		catalog:      catalog,
		customers:    customers,
		storeBaseURL: strings.TrimRight(storeBaseURL, "/"),
	}
}

// BuildForProduct renders one notification per registered customer for the
// given product.
func (s *NotificationService) BuildForProduct(ctx context.Context, productID string) (*model.Product, []Notification, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	notifications := make([]Notification, 0, len(customers))
	for _, customer := range customers {
		message := s.renderMessage(customer.Name, product)
		notifications = append(notifications, Notification{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Phone:        customer.Phone,
			Message:      message,
			Link:         WhatsAppLink(customer.Phone, message),
		})
	}

	return product, notifications, nil
}

func (s *NotificationService) renderMessage(customerName string, product *model.Product) string {
	productURL := fmt.Sprintf("%s/#produit-%s", s.storeBaseURL, product.ID)

	var b strings.Builder
	b.WriteString("✨ *NOUVEAU PRODUIT* ✨\n\n")
	fmt.Fprintf(&b, "Bonjour *%s* ! 👋\n\n", customerName)
	b.WriteString("Nous avons le plaisir de vous annoncer l'arrivée d'un nouveau produit chez *ChristShop* :\n\n")
	fmt.Fprintf(&b, "📦 *Produit*\n%s\n\n", product.Name)
	fmt.Fprintf(&b, "💰 *Prix*\n%s\n\n", FormatPrice(product.Price))
	fmt.Fprintf(&b, "📝 *Description*\n%s\n\n", product.Description)
	fmt.Fprintf(&b, "🏷️ *Catégorie*\n%s\n\n", product.CategoryName)
	fmt.Fprintf(&b, "🔗 *Découvrez le produit :*\n%s\n\n", productURL)
	b.WriteString("💬 _N'hésitez pas à nous contacter pour passer commande !_\n\n")
	b.WriteString("À très bientôt ! 🎉✨")
	return b.String()
}

// FormatPrice renders an XAF amount with thousands separators, e.g. "15 000 FCFA".
func FormatPrice(price float64) string {
	n := int64(price)
	s := fmt.Sprintf("%d", n)

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return strings.Join(parts, " ") + " FCFA"
}

// WhatsAppLink builds a wa.me deep link carrying a prefilled message.
func WhatsAppLink(phone, message string) string {
	// wa.me expects the number without plus sign, and %20 rather than + for spaces.
	number := strings.TrimPrefix(phone, "+")
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, encoded)
}
