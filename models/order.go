package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"

	PaymentCash = "cash"
	PaymentCard = "card"
)

var OrderStatuses = []string{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	return method == PaymentCash || method == PaymentCard
}

// OrderItem is the canonical item shape accepted by the persistence layer.
// It is a snapshot of product data at order time: later product edits or
// deletions do not alter historical orders.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId" binding:"required"`
	Name      string  `bson:"name" json:"name" binding:"required"`
	Quantity  int     `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Price     float64 `bson:"price" json:"price" binding:"min=0"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	CustomerAddress string             `bson:"customerAddress" json:"customerAddress"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	Status          string             `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	IdempotencyKey  string             `bson:"idempotencyKey,omitempty" json:"-"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
