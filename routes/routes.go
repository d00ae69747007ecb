package routes

import (
	"github.com/Fatima-Benaya/2nConv-ELLW/configs"
	"github.com/Fatima-Benaya/2nConv-ELLW/controllers"
	"github.com/Fatima-Benaya/2nConv-ELLW/middlewares"
	"github.com/Fatima-Benaya/2nConv-ELLW/repository"
	"github.com/Fatima-Benaya/2nConv-ELLW/services"
	"github.com/Fatima-Benaya/2nConv-ELLW/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	orderSvc := services.NewOrderService(db, repository.NewOrderRepository(db))
	foodSvc := services.NewFoodService(repository.NewFoodRepository(db))
	scoreSvc := services.NewScoreService(repository.NewScoreRepository(db))

	// Order tracking feed
	hub := ws.NewTrackHub(orderSvc)
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTTTL)
	foodCtrl := controllers.NewFoodController(foodSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, hub)
	scoreCtrl := controllers.NewScoreController(scoreSvc)

	api := r.Group("/api")

	foods := api.Group("/foods", middlewares.RateLimit(60))
	{
		foods.GET("", foodCtrl.List)
		foods.GET("/:id", foodCtrl.Detail)
		foods.POST("", foodCtrl.Create)
		foods.PUT("/:id", foodCtrl.Update)
		foods.DELETE("/:id", foodCtrl.Delete)
	}

	orders := api.Group("/orders", middlewares.RateLimit(30))
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Create)
		orders.PATCH("/:id/status", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"), orderCtrl.UpdateStatus)
	}

	auth := api.Group("/auth", middlewares.RateLimit(20))
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	scores := api.Group("/scores", middlewares.RateLimit(30))
	{
		scores.POST("", scoreCtrl.Create)
		scores.GET("/top/:level", scoreCtrl.Top)
		scores.PUT("/:id", scoreCtrl.Update)
	}

	r.GET("/ws/orders/:id", hub.HandleWebSocket)
}
