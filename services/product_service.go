package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
)

var (
	ErrInvalidCategory = validationErr("category must be one of: Offers, Sandwiches, Crepes, Boxes, Extras, Meals")
	ErrInvalidPrice    = validationErr("price must be a non-negative number")
	ErrMissingProduct  = validationErr("name, description, image, and category are required")
)

type ProductStore interface {
	List(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	if category != "" && !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.products.List(ctx, category)
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if name == "" || description == "" || req.Image == "" || req.Category == "" {
		return nil, ErrMissingProduct
	}
	if !models.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	product := &models.Product{
		Name:        name,
		Price:       req.Price,
		Description: description,
		Image:       req.Image,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateProductRequest) (*models.Product, error) {
	fields := map[string]interface{}{}

	if v := strings.TrimSpace(req.Name); v != "" {
		fields["name"] = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		fields["description"] = v
	}
	if req.Image != "" {
		fields["image"] = req.Image
	}
	if req.Category != "" {
		if !models.IsValidCategory(req.Category) {
			return nil, ErrInvalidCategory
		}
		fields["category"] = req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		fields["price"] = *req.Price
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	return s.products.Update(ctx, id, fields)
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.products.Delete(ctx, id)
}

// SetImage points a product at a freshly uploaded image reference.
func (s *ProductService) SetImage(ctx context.Context, id primitive.ObjectID, imageURL string) (*models.Product, error) {
	return s.products.Update(ctx, id, map[string]interface{}{"image": imageURL})
}
