package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
	"shawarma-shop/repositories"
	"shawarma-shop/services"
)

type OrderAPI interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateOrderRequest) (*models.Order, error)
}

type OrderController struct {
	orders OrderAPI
}

func NewOrderController(orders OrderAPI) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Get all orders
// @Description Get all orders, newest first (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context())
	if err != nil {
		log.Println("Failed to list orders:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// @Summary Get order by ID
// @Description Get order details (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID format"})
		return
	}

	order, err := ctrl.orders.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		log.Println("Failed to fetch order:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Create order
// @Description Create an order from canonical items: productId, name, quantity, price
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.Create(c.Request.Context(), req)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Println("Failed to create order:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// @Summary Update order
// @Description Merge fields into an order (status or customer fields) and return the updated document (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [put]
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID format"})
		return
	}

	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.orders.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		case services.IsValidation(err):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			log.Println("Failed to update order:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to update order"})
		}
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order updated successfully", "data": order})
}
