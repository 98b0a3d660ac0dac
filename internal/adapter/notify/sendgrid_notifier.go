package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/rl1809/storefront/internal/core/domain"
)

type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridNotifier emails the buyer an order confirmation.
type SendGridNotifier struct {
	client mailSender
	from   *mail.Email
}

func NewSendGridNotifier(apiKey, sender, storeName string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(storeName, sender),
	}
}

func (n *SendGridNotifier) NotifyOrderPlaced(ctx context.Context, order domain.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	to := mail.NewEmail(order.CustomerName, order.CustomerEmail)
	subject := "Order Confirmation"
	message := mail.NewSingleEmail(n.from, subject, to, plainBody(order), htmlBody(order))

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed to send email: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func plainBody(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your purchase! Your order %s has been placed.\n\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s  %s\n", item.Quantity, item.Name, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", order.Total.StringFixed(2))
	return b.String()
}

func htmlBody(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<strong>Thank you for your purchase!</strong><br>Your order (ID: %s) has been placed.<br><ul>",
		html.EscapeString(order.ID))
	for _, item := range order.Items {
		fmt.Fprintf(&b, "<li>%d &times; %s: %s</li>", item.Quantity, html.EscapeString(item.Name), item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "</ul>Total Amount: <strong>%s</strong>", order.Total.StringFixed(2))
	return b.String()
}
