package client

import (
	"context"
	"errors"
	"fmt"

	"beauty-parlour-api/internal/config"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrOrderCreationFailed = errors.New("failed to create payment order")

type RazorpayClient interface {
	// CreateOrder opens a gateway order for the given amount in paise.
	CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*CreateOrderResult, error)
	KeyID() string
}

type CreateOrderResult struct {
	OrderID  string
	Amount   int
	Currency string
}

type razorpayClientImpl struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayClient(cfg *config.Razorpay) RazorpayClient {
	return &razorpayClientImpl{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		keyID:  cfg.KeyID,
	}
}

func (c *razorpayClientImpl) KeyID() string {
	return c.keyID
}

func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amountPaise int, currency, receipt string) (*CreateOrderResult, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	order, err := c.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	orderID, ok := order["id"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: order id missing in gateway response", ErrOrderCreationFailed)
	}

	return &CreateOrderResult{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: currency,
	}, nil
}
