package models

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description" binding:"required"`
	Image       string  `json:"image" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

type UpdateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
}

// CreateOrderRequest accepts only the canonical direct-field item shape.
// Callers holding cart entries must construct OrderItems explicitly before
// hitting this endpoint.
type CreateOrderRequest struct {
	CustomerName    string      `json:"customerName" binding:"required"`
	CustomerPhone   string      `json:"customerPhone" binding:"required"`
	CustomerAddress string      `json:"customerAddress" binding:"required"`
	Items           []OrderItem `json:"items" binding:"required,min=1,dive"`
	TotalAmount     float64     `json:"totalAmount" binding:"required,gt=0"`
	PaymentMethod   string      `json:"paymentMethod"`
}

type UpdateOrderRequest struct {
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerAddress string   `json:"customerAddress"`
	Status          string   `json:"status"`
	PaymentMethod   string   `json:"paymentMethod"`
	TotalAmount     *float64 `json:"totalAmount"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type SetCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}
