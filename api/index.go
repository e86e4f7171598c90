package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"shawarma-shop/config"
	"shawarma-shop/middleware"
	"shawarma-shop/models"
	"shawarma-shop/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

// initApp builds the app exactly once per serverless instance; subsequent
// invocations reuse the router and the memoized database connection.
func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
