package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shawarma-shop/cart"
	"shawarma-shop/config"
	"shawarma-shop/controllers"
	"shawarma-shop/middleware"
	"shawarma-shop/models"
	"shawarma-shop/repositories"
	"shawarma-shop/services"
)

func SetupRoutes(router *gin.Engine) {
	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()
	userRepo := repositories.NewUserRepository()

	carts := cart.NewStore()

	var notifier services.OrderNotifier
	if emailSvc, err := models.NewEmailService(); err == nil {
		notifier = emailSvc
	} else {
		log.Println("Order email notifications disabled:", err)
	}

	uploads, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary disabled, using local image uploads:", err)
		uploads = nil
	}

	productSvc := services.NewProductService(productRepo)
	orderSvc := services.NewOrderService(orderRepo)
	authSvc := services.NewAuthService(userRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo, carts, notifier, config.AppConfig.ShopEmail)

	productCtrl := controllers.NewProductController(productSvc, uploads)
	orderCtrl := controllers.NewOrderController(orderSvc)
	cartCtrl := controllers.NewCartController(carts, productSvc, checkoutSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:productId", cartCtrl.SetQuantity)
	router.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/checkout", cartCtrl.Checkout)

	router.POST("/orders", orderCtrl.CreateOrder)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PUT("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		admin.POST("/products/:id/image", productCtrl.UploadProductImage)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.GET("/orders/:id", orderCtrl.GetOrderByID)
		admin.PUT("/orders/:id", orderCtrl.UpdateOrder)
	}

	router.Static("/uploads", "./uploads")
}
