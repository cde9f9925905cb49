package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Catalog/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Catalog/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/Catalog/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Catalog/internal/usecase/contract"
)

// RouterOptions carries the knobs the router needs from configuration.
type RouterOptions struct {
	RequestTimeout time.Duration
	RateLimitRPS   float64
}

type Router struct {
	userHandler        *UserHandler
	productHandler     *ProductHandler
	interactionHandler *InteractionHandler
	jwtService         usecase.JWTService
	opts               RouterOptions
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	productUsecase usecasecontract.IProductUseCase,
	reactionUsecase usecasecontract.IReactionUseCase,
	jwtService usecase.JWTService,
	logger usecasecontract.IAppLogger,
	opts RouterOptions,
) *Router {
	return &Router{
		userHandler:        NewUserHandler(userUsecase, opts.RequestTimeout, logger),
		productHandler:     NewProductHandler(productUsecase, opts.RequestTimeout, logger),
		interactionHandler: NewInteractionHandler(reactionUsecase, opts.RequestTimeout, logger),
		jwtService:         jwtService,
		opts:               opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	// rate limiter configuration
	if r.opts.RateLimitRPS > 0 {
		api.Use(middleware.RateLimiter(middleware.NewLimiter(r.opts.RateLimitRPS)))
	}

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
	}

	requireAuth := middleware.AuthMiddleWare(r.jwtService)

	users := api.Group("/users")
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/me", requireAuth, r.userHandler.GetCurrentUser)
	}

	products := api.Group("/products")
	{
		products.GET("/search", r.productHandler.SearchProductsHandler)
		products.GET("", requireAuth, r.productHandler.GetProductsHandler)
		products.POST("", requireAuth, r.productHandler.CreateProductHandler)
		products.POST("/:id/like", requireAuth, r.interactionHandler.ReactToProductHandler)
	}
}
