package http

import (
	"time"

	"github.com/betselot-m/kindcart/internal/handler/http/middleware"
	usecasecontract "github.com/betselot-m/kindcart/internal/usecase/contract"
	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	productHandler *ProductHandler
	likeHandler    *LikeHandler
	verifier       middleware.TokenVerifier
	rateLimit      float64
}

func NewRouter(productService usecasecontract.IProductService, likeService usecasecontract.ILikeService, verifier middleware.TokenVerifier, rateLimit float64) *Router {
	return &Router{
		productHandler: NewProductHandler(productService),
		likeHandler:    NewLikeHandler(likeService),
		verifier:       verifier,
		rateLimit:      rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public product routes; viewer identity is picked up when present so
	// is_liked_by_user can be computed for signed-in browsers.
	products := v1.Group("/products")
	products.Use(middleware.OptionalAuthMiddleWare(r.verifier))
	{
		products.GET("", r.productHandler.ListProductsHandler)
		products.GET("/:productID", r.productHandler.GetProductHandler)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.verifier))
	{
		protected.POST("/products", r.productHandler.CreateProductHandler)

		// Like routes
		protected.POST("/products/:productID/like", r.likeHandler.LikeProductHandler)
		protected.POST("/products/:productID/unlike", r.likeHandler.UnlikeProductHandler)
		protected.GET("/me/likes", r.likeHandler.ListMyLikesHandler)
	}
}
