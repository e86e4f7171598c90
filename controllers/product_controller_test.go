package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shawarma-shop/models"
	"shawarma-shop/repositories"
	"shawarma-shop/services"
)

type fakeProductAPI struct {
	product *models.Product
	list    []models.Product
	err     error
	touched bool
}

func (f *fakeProductAPI) List(_ context.Context, _ string) ([]models.Product, error) {
	f.touched = true
	return f.list, f.err
}

func (f *fakeProductAPI) Get(_ context.Context, _ primitive.ObjectID) (*models.Product, error) {
	f.touched = true
	return f.product, f.err
}

func (f *fakeProductAPI) Create(_ context.Context, _ models.CreateProductRequest) (*models.Product, error) {
	f.touched = true
	return f.product, f.err
}

func (f *fakeProductAPI) Update(_ context.Context, _ primitive.ObjectID, _ models.UpdateProductRequest) (*models.Product, error) {
	f.touched = true
	return f.product, f.err
}

func (f *fakeProductAPI) Delete(_ context.Context, _ primitive.ObjectID) error {
	f.touched = true
	return f.err
}

func (f *fakeProductAPI) SetImage(_ context.Context, _ primitive.ObjectID, _ string) (*models.Product, error) {
	f.touched = true
	return f.product, f.err
}

func productRouter(api *fakeProductAPI) *gin.Engine {
	ctrl := NewProductController(api, nil)
	r := gin.New()
	r.GET("/categories", ctrl.GetAllCategories)
	r.GET("/products", ctrl.GetAllProducts)
	r.GET("/products/:id", ctrl.GetProductByID)
	r.POST("/admin/products", ctrl.CreateProduct)
	r.PUT("/admin/products/:id", ctrl.UpdateProduct)
	r.DELETE("/admin/products/:id", ctrl.DeleteProduct)
	return r
}

func TestGetAllCategories(t *testing.T) {
	w, body := doJSON(t, productRouter(&fakeProductAPI{}), http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, len(models.Categories))
	assert.Equal(t, "Offers", data[0])
	assert.Equal(t, "Meals", data[5])
}

func TestGetAllProducts(t *testing.T) {
	api := &fakeProductAPI{list: []models.Product{
		{ID: primitive.NewObjectID(), Name: "Chicken Shawarma", Price: 55, Category: "Sandwiches"},
	}}

	w, body := doJSON(t, productRouter(api), http.MethodGet, "/products?category=Sandwiches", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
}

func TestGetAllProductsUnknownCategory(t *testing.T) {
	api := &fakeProductAPI{err: services.ErrInvalidCategory}
	w, _ := doJSON(t, productRouter(api), http.MethodGet, "/products?category=Desserts", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByIDMalformedID(t *testing.T) {
	api := &fakeProductAPI{}
	w, _ := doJSON(t, productRouter(api), http.MethodGet, "/products/definitely-not-hex", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, api.touched)
}

func TestGetProductByIDNotFound(t *testing.T) {
	api := &fakeProductAPI{err: repositories.ErrNotFound}
	w, _ := doJSON(t, productRouter(api), http.MethodGet, "/products/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct(t *testing.T) {
	api := &fakeProductAPI{product: &models.Product{
		ID:       primitive.NewObjectID(),
		Name:     "Chicken Shawarma",
		Category: "Sandwiches",
	}}

	w, body := doJSON(t, productRouter(api), http.MethodPost, "/admin/products", models.CreateProductRequest{
		Name:        "Chicken Shawarma",
		Price:       55,
		Description: "Marinated chicken, garlic sauce, pickles",
		Image:       "/uploads/products/shawarma.jpg",
		Category:    "Sandwiches",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
}

func TestCreateProductValidationErrorMapsTo400(t *testing.T) {
	api := &fakeProductAPI{err: services.ErrInvalidCategory}
	w, body := doJSON(t, productRouter(api), http.MethodPost, "/admin/products", models.CreateProductRequest{
		Name:        "Baklava",
		Price:       30,
		Description: "Layered pastry",
		Image:       "/uploads/products/baklava.jpg",
		Category:    "Desserts",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrInvalidCategory.Error(), body["message"])
}

func TestUpdateProductMalformedID(t *testing.T) {
	api := &fakeProductAPI{}
	w, _ := doJSON(t, productRouter(api), http.MethodPut, "/admin/products/xyz", models.UpdateProductRequest{Name: "New"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, api.touched)
}

func TestDeleteProductNotFound(t *testing.T) {
	api := &fakeProductAPI{err: repositories.ErrNotFound}
	w, _ := doJSON(t, productRouter(api), http.MethodDelete, "/admin/products/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
