package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/La-Mediterranee/Server/internal/auth"
	"github.com/La-Mediterranee/Server/internal/catalog"
	"github.com/La-Mediterranee/Server/internal/checkout"
	"github.com/La-Mediterranee/Server/internal/middleware"
	"github.com/La-Mediterranee/Server/internal/wallet"
	"github.com/La-Mediterranee/Server/internal/webhooks"
)

// Deps are the handlers the router wires up. Tests construct them with
// in-memory repositories and stub processors.
type Deps struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Checkout *checkout.Handler
	Wallet   *wallet.Handler
	Webhooks *webhooks.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
		authGroup.POST("/session/verify", deps.Auth.VerifySession)

		session := authGroup.Group("/session")
		session.Use(middleware.AuthMiddleware())
		{
			session.POST("/extend", deps.Auth.ExtendSession)
		}
	}

	// ───────────────────────── PRODUCTS ─────────────────────────
	products := r.Group("/products")
	{
		products.GET("", deps.Catalog.ListProducts)
		products.GET("/categories", deps.Catalog.ListCategories)
		products.GET("/categories/:category", deps.Catalog.ListProductsByCategory)
		products.GET("/:product", deps.Catalog.GetProduct)

		admin := products.Group("")
		admin.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole(auth.RoleAdmin),
		)
		{
			admin.POST("/:product/image", deps.Catalog.UploadImage)
		}
	}

	// ───────────────────────── CHECKOUT ─────────────────────────
	buy := r.Group("/buy")
	{
		buy.POST("/create-payment-intent", deps.Checkout.CreatePaymentIntent)
	}

	// ───────────────────────── WALLET ─────────────────────────
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/wallet", deps.Wallet.GetWallet)
		user.POST("/wallet", deps.Wallet.CreateSetupIntent)
	}

	// ───────────────────────── WEBHOOKS ─────────────────────────
	hooks := r.Group("/webhooks")
	{
		hooks.POST("/stripe", deps.Webhooks.HandleStripe)
	}

	return r
}
