package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
	"shawarma-shop/repositories"
	"shawarma-shop/services"
	"shawarma-shop/utils"
)

type ProductAPI interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*models.Product, error)
}

type ProductController struct {
	products ProductAPI
	uploads  *models.CloudinaryService // nil means local disk fallback
}

func NewProductController(products ProductAPI, uploads *models.CloudinaryService) *ProductController {
	return &ProductController{products: products, uploads: uploads}
}

func productCacheKey(category string) string {
	if category == "" {
		return "products_list_all"
	}
	return "products_list_" + category
}

func invalidateProductCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all categories
// @Description Get the fixed menu category set
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": models.Categories})
}

// @Summary Get all products
// @Description Get all products, newest first, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	category := c.Query("category")
	cacheKey := productCacheKey(category)

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, err := ctrl.products.List(c.Request.Context(), category)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Println("Failed to list products:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	response := gin.H{"success": true, "message": "Products retrieved", "data": products}

	if models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(c.Request.Context(), cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Description Get product details
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
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
		log.Println("Failed to fetch product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Create new product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), req)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		log.Println("Failed to create product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}

// @Summary Update product
// @Description Update product fields and return the updated document (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		case services.IsValidation(err):
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
		default:
			log.Println("Failed to update product:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to update product"})
		}
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product updated successfully", "data": product})
}

// @Summary Delete product
// @Description Delete product permanently (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	if err := ctrl.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		log.Println("Failed to delete product:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Product deleted successfully"})
}

// @Summary Upload product image
// @Description Upload a product image to Cloudinary (local disk fallback) and attach it (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param image formData file true "Product image"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID format"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	var imageURL string
	if ctrl.uploads != nil {
		if err := ctrl.uploads.ValidateImageFile(fileHeader); err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read image"})
			return
		}
		defer file.Close()

		imageURL, _, err = ctrl.uploads.UploadImage(c.Request.Context(), file, fileHeader.Filename, "products")
		if err != nil {
			log.Println("Cloudinary upload failed:", err)
			c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
	} else {
		imageURL, err = utils.UploadFile(c, fileHeader, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	product, err := ctrl.products.SetImage(c.Request.Context(), id, imageURL)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		log.Println("Failed to attach image:", err)
		c.JSON(500, gin.H{"success": false, "message": "Failed to update product image"})
		return
	}

	invalidateProductCache()

	c.JSON(200, gin.H{"success": true, "message": "Image uploaded", "data": product})
}
