package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rl1809/storefront/internal/core/domain"
)

type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	if f.err != nil {
		return nil, f.err
	}
	return &rest.Response{StatusCode: f.status, Body: "body"}, nil
}

func testOrder() domain.Order {
	return domain.Order{
		ID:            "order-1",
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "Colar <ouro>", Quantity: 2, Subtotal: decimal.RequireFromString("39.8")},
		},
		Total: decimal.RequireFromString("39.8"),
	}
}

func newTestNotifier(sender *fakeSender) *SendGridNotifier {
	n := NewSendGridNotifier("key", "loja@example.com", "Queen Store")
	n.client = sender
	return n
}

func TestSendGridNotifier_SendsConfirmation(t *testing.T) {
	sender := &fakeSender{status: 202}
	n := newTestNotifier(sender)

	require.NoError(t, n.NotifyOrderPlaced(context.Background(), testOrder()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "Order Confirmation", msg.Subject)
	assert.Equal(t, "loja@example.com", msg.From.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "maria@example.com", msg.Personalizations[0].To[0].Address)

	var htmlContent string
	for _, c := range msg.Content {
		if c.Type == "text/html" {
			htmlContent = c.Value
		}
	}
	assert.Contains(t, htmlContent, "Colar &lt;ouro&gt;")
	assert.Contains(t, htmlContent, "39.80")
}

func TestSendGridNotifier_SkipsWithoutEmail(t *testing.T) {
	sender := &fakeSender{status: 202}
	n := newTestNotifier(sender)

	order := testOrder()
	order.CustomerEmail = ""
	require.NoError(t, n.NotifyOrderPlaced(context.Background(), order))
	assert.Empty(t, sender.sent)
}

func TestSendGridNotifier_Errors(t *testing.T) {
	n := newTestNotifier(&fakeSender{status: 401})
	assert.Error(t, n.NotifyOrderPlaced(context.Background(), testOrder()))

	n = newTestNotifier(&fakeSender{err: errors.New("network down")})
	assert.ErrorContains(t, n.NotifyOrderPlaced(context.Background(), testOrder()), "network down")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	require.NoError(t, n.NotifyOrderPlaced(context.Background(), testOrder()))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "order placed", entry.Message)
	assert.Equal(t, "order-1", entry.ContextMap()["order_id"])
	assert.Equal(t, "39.80", entry.ContextMap()["total"])
}
