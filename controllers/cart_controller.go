package controllers

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/cart"
	"shawarma-shop/models"
	"shawarma-shop/repositories"
	"shawarma-shop/services"
)

const cartSessionCookie = "cart_session"

type CheckoutAPI interface {
	Checkout(ctx context.Context, sessionID string, req models.CheckoutRequest, idempotencyKey string) (*models.Order, error)
}

type ProductGetter interface {
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type CartController struct {
	carts    *cart.Store
	products ProductGetter
	checkout CheckoutAPI
}

func NewCartController(carts *cart.Store, products ProductGetter, checkout CheckoutAPI) *CartController {
	return &CartController{carts: carts, products: products, checkout: checkout}
}

// sessionID resolves the cart session for this request: header first for
// API clients, cookie for browsers, fresh cookie-backed id otherwise.
func (ctrl *CartController) sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Cart-Session"); sid != "" {
		return sid
	}
	if sid, err := c.Cookie(cartSessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.SetCookie(cartSessionCookie, sid, 86400, "/", "", false, true)
	return sid
}

func cartPayload(state cart.State) gin.H {
	subtotal := state.Subtotal()
	return gin.H{
		"items":       state.Items,
		"subtotal":    subtotal,
		"deliveryFee": services.DeliveryFee,
		"total":       subtotal + services.DeliveryFee,
	}
}

// @Summary Get cart
// @Description Get the session cart with its recomputed subtotal
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	state := ctrl.carts.Get(ctrl.sessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(state)})
}

// @Summary Add product to cart
// @Description Add one unit of a product; repeated adds increment the quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	product, err := ctrl.products.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		log.Println("Failed to fetch product for cart:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to add to cart"})
		return
	}

	state := ctrl.carts.Dispatch(ctrl.sessionID(c), cart.Action{Kind: cart.AddItem, Product: *product})
	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cartPayload(state)})
}

// @Summary Set cart item quantity
// @Description Set the quantity of a cart entry; zero or less removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	productID := c.Param("productId")
	if _, err := primitive.ObjectIDFromHex(productID); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	var req models.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	state := ctrl.carts.Dispatch(ctrl.sessionID(c), cart.Action{
		Kind:      cart.SetQuantity,
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(state)})
}

// @Summary Remove cart item
// @Description Remove a product from the cart; no-op when absent
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID := c.Param("productId")
	if _, err := primitive.ObjectIDFromHex(productID); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	state := ctrl.carts.Dispatch(ctrl.sessionID(c), cart.Action{Kind: cart.RemoveItem, ProductID: productID})
	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartPayload(state)})
}

// @Summary Clear cart
// @Description Empty the session cart unconditionally
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	state := ctrl.carts.Dispatch(ctrl.sessionID(c), cart.Action{Kind: cart.Clear})
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(state)})
}

// @Summary Checkout
// @Description Submit the session cart as an order; clears the cart on success, leaves it untouched on failure
// @Tags Cart
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-generated idempotency key"
// @Param request body models.CheckoutRequest true "Customer details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	order, err := ctrl.checkout.Checkout(
		c.Request.Context(),
		ctrl.sessionID(c),
		req,
		c.GetHeader("Idempotency-Key"),
	)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Println("Checkout failed:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to place order. Please try again"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed successfully", "data": order})
}
