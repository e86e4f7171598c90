package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
)

var (
	ErrInvalidStatus   = validationErr("status must be one of: pending, preparing, ready, delivered, cancelled")
	ErrInvalidItem     = validationErr("each item must have productId, name, quantity, and price")
	ErrInvalidTotal    = validationErr("total amount must be a positive number")
	ErrMissingCustomer = validationErr("customerName, customerPhone, and customerAddress are required")
	ErrNothingToUpdate = validationErr("no fields supplied to update")
)

type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Order, error)
}

type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Create validates and persists an order submitted through the public API
// in the canonical item shape. New orders always start out pending.
func (s *OrderService) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	phone := strings.TrimSpace(req.CustomerPhone)
	address := strings.TrimSpace(req.CustomerAddress)

	if name == "" || phone == "" || address == "" {
		return nil, ErrMissingCustomer
	}

	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductID) == "" || strings.TrimSpace(item.Name) == "" {
			return nil, ErrInvalidItem
		}
		if item.Quantity < 1 || item.Price < 0 {
			return nil, ErrInvalidItem
		}
	}

	if req.TotalAmount <= 0 {
		return nil, ErrInvalidTotal
	}

	paymentMethod := strings.TrimSpace(req.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !models.IsValidPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPayment
	}

	now := time.Now()
	order := &models.Order{
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update merges the supplied fields into the stored order and returns the
// updated document. Orders are never deleted; status changes are how the
// admin dashboard drives them through their lifecycle.
func (s *OrderService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateOrderRequest) (*models.Order, error) {
	fields := map[string]interface{}{}

	if v := strings.TrimSpace(req.CustomerName); v != "" {
		fields["customerName"] = v
	}
	if v := strings.TrimSpace(req.CustomerPhone); v != "" {
		fields["customerPhone"] = v
	}
	if v := strings.TrimSpace(req.CustomerAddress); v != "" {
		fields["customerAddress"] = v
	}
	if req.Status != "" {
		if !models.IsValidOrderStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		fields["status"] = req.Status
	}
	if req.PaymentMethod != "" {
		if !models.IsValidPaymentMethod(req.PaymentMethod) {
			return nil, ErrInvalidPayment
		}
		fields["paymentMethod"] = req.PaymentMethod
	}
	if req.TotalAmount != nil {
		if *req.TotalAmount <= 0 {
			return nil, ErrInvalidTotal
		}
		fields["totalAmount"] = *req.TotalAmount
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	return s.orders.Update(ctx, id, fields)
}
