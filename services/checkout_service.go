package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shawarma-shop/cart"
	"shawarma-shop/models"
	"shawarma-shop/repositories"
)

// DeliveryFee is added to the cart subtotal on every checkout, in LE.
const DeliveryFee = 35

// phone numbers are collected as local digits and stored with the country
// code prefixed, the same way the storefront always submitted them.
const phonePrefix = "+20"

var (
	ErrMissingFields  = validationErr("customer name, phone, and address are required")
	ErrEmptyCart      = validationErr("cart is empty")
	ErrInvalidPayment = validationErr("payment method must be cash or card")
)

type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Order, error)
}

type OrderNotifier interface {
	SendOrderNotification(toEmail string, order *models.Order) error
}

// CheckoutService turns a validated checkout request plus a non-empty
// session cart into a persisted order, then clears the cart. Any failure
// before or during persistence leaves the cart untouched so the customer
// can retry.
type CheckoutService struct {
	orders    OrderWriter
	carts     *cart.Store
	notifier  OrderNotifier // nil when SMTP is not configured
	shopEmail string
}

func NewCheckoutService(orders OrderWriter, carts *cart.Store, notifier OrderNotifier, shopEmail string) *CheckoutService {
	return &CheckoutService{orders: orders, carts: carts, notifier: notifier, shopEmail: shopEmail}
}

func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, req models.CheckoutRequest, idempotencyKey string) (*models.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	address := strings.TrimSpace(req.CustomerAddress)

	if name == "" || phone == "" || address == "" {
		return nil, ErrMissingFields
	}

	state := s.carts.Get(sessionID)
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := OrderItemsFromCart(state.Items)
	if err != nil {
		return nil, err
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPayment
	}

	if !strings.HasPrefix(phone, "+") {
		phone = phonePrefix + phone
	}

	if idempotencyKey != "" {
		existing, err := s.orders.FindByIdempotencyKey(ctx, idempotencyKey)
		switch {
		case err == nil && existing != nil:
			// The first submission already landed; hand back the same
			// order instead of creating a duplicate.
			s.carts.Clear(sessionID)
			return existing, nil
		case err != nil && !errors.Is(err, repositories.ErrNotFound):
			// An inconclusive lookup must not fall through to Create: the
			// key may already be bound to an order we failed to read.
			return nil, err
		}
	}

	now := time.Now()
	order := &models.Order{
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Items:           items,
		TotalAmount:     state.Subtotal() + DeliveryFee,
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		IdempotencyKey:  idempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.carts.Clear(sessionID)

	if s.notifier != nil && s.shopEmail != "" {
		go func(o models.Order) {
			if err := s.notifier.SendOrderNotification(s.shopEmail, &o); err != nil {
				log.Println("Failed to send order notification:", err)
			}
		}(*order)
	}

	return order, nil
}
