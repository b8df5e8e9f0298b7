package main

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/order"
	"storefront/internal/review"
	"storefront/internal/seed"
	"storefront/internal/session"
	"storefront/internal/user"
	"storefront/internal/wishlist"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
// Every store is constructed exactly once here and handed to its consumers;
// nothing reaches for a process-wide singleton.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	// user accounts; seeding through the service so passwords get hashed
	userRepo := user.NewInMemoryRepository(nil)
	userService := user.NewService(userRepo)
	for _, u := range seed.Users() {
		if _, err := userService.Create(u); err != nil {
			log.Fatalf("seed user %q: %v", u.Email, err)
		}
	}

	// catalog
	catalogRepo := catalog.NewInMemoryRepository(nil)
	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.ResetProducts(seed.Products()); err != nil {
		log.Fatalf("seed products: %v", err)
	}
	catalogHandler := catalog.NewHandler(catalogService, userService)

	// reviews
	reviewRepo := review.NewInMemoryRepository(seed.Reviews())
	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService, userService)

	// carts
	cartRepo := cart.NewInMemoryRepository()
	cartService := cart.NewService(cartRepo, catalogService)
	cartHandler := cart.NewHandler(cartService)

	// wishlists
	wishlistRepo := wishlist.NewInMemoryRepository()
	wishlistService := wishlist.NewService(wishlistRepo, catalogService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	// orders; placing an order snapshots and clears the cart
	orderRepo := order.NewInMemoryRepository(seed.Orders(seed.Products()))
	orderService := order.NewService(orderRepo, cartService)
	orderHandler := order.NewHandler(orderService, userService)

	// session state survives restarts through the file-backed slot
	sessionStore := session.NewFileStore(cfg.SessionFile)
	sessionManager := session.NewManager(userService, sessionStore)
	sessionHandler := session.NewHandler(sessionManager, cfg.JWTSecret)

	sessionHandler.RegisterPublicRoutes(app)
	catalogHandler.RegisterPublicRoutes(app)
	reviewHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// allow unauthenticated GETs for numeric product paths (detail,
		// reviews); everything else past this point needs a token
		Filter: func(c *fiber.Ctx) bool {
			if c.Method() != fiber.MethodGet {
				return false
			}
			p := c.Path()
			if strings.HasPrefix(p, "/api/v1/product/") {
				rest := strings.TrimPrefix(p, "/api/v1/product/")
				seg := strings.SplitN(rest, "/", 2)[0]
				if _, err := strconv.Atoi(seg); err == nil {
					return true
				}
			}
			return false
		},
	}))

	sessionHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	wishlistHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reviewHandler.RegisterProtectedRoutes(app)
	catalogHandler.RegisterProtectedRoutes(app)

	log.Printf("starting storefront on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	log.Printf("%s %s -> %d (%s)", c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
	return err
}
