package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-thrifty-inventory/internal/config"
	"go-thrifty-inventory/internal/handler"
	"go-thrifty-inventory/internal/middleware"
	"go-thrifty-inventory/internal/model"
	"go-thrifty-inventory/internal/repository"
	"go-thrifty-inventory/internal/service"
	"go-thrifty-inventory/internal/ws"
	"go-thrifty-inventory/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseURL)
	if cfg.Migrations {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal("Failed to run migrations: ", err)
		}
	} else {
		db.AutoMigrate(&model.Branch{}, &model.Product{}, &model.User{}, &model.Log{})
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	branchRepo := repository.NewBranchRepo(db)
	productRepo := repository.NewProductRepo(db)
	userRepo := repository.NewUserRepo(db)
	logRepo := repository.NewLogRepo(db)

	branchService := service.NewBranchService(branchRepo, productRepo, db)
	productService := service.NewProductService(productRepo, branchRepo, logRepo, db)
	userService := service.NewUserService(userRepo, logRepo, db)
	logService := service.NewLogService(logRepo, productRepo, userRepo, db, wsHub)
	authService := service.NewAuthService(userRepo)

	branchHandler := handler.NewBranchHandler(branchService)
	productHandler := handler.NewProductHandler(productService)
	userHandler := handler.NewUserHandler(userService)
	logHandler := handler.NewLogHandler(logService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Thrifty Inventory API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Mutating routes get JWT auth only when enabled
	requireAuth := func(c *fiber.Ctx) error { return c.Next() }
	if cfg.AuthRequired {
		requireAuth = middleware.RequireAuth(userRepo)
	}

	// 6. Routes
	auth := app.Group("/Auth")
	auth.Post("/Login", authHandler.Login)
	auth.Post("/ValidateToken", authHandler.ValidateToken)

	branches := app.Group("/Branches")
	branches.Get("/", branchHandler.GetBranches)
	branches.Get("/:id", branchHandler.GetBranch)
	branches.Post("/", requireAuth, branchHandler.CreateBranch)
	branches.Put("/:id", requireAuth, branchHandler.UpdateBranch)
	branches.Delete("/:id", requireAuth, branchHandler.DeleteBranch)

	products := app.Group("/Products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/Branch/:branchId", productHandler.GetProductsByBranch)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", requireAuth, productHandler.CreateProduct)
	products.Put("/:id", requireAuth, productHandler.UpdateProduct)
	products.Delete("/:id", requireAuth, productHandler.DeleteProduct)

	users := app.Group("/Users")
	users.Get("/", userHandler.GetUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", requireAuth, userHandler.UpdateUser)
	users.Delete("/:id", requireAuth, userHandler.DeleteUser)

	logs := app.Group("/Logs")
	logs.Get("/", logHandler.GetLogs)
	logs.Get("/Product/:productId", logHandler.GetLogsByProduct)
	logs.Get("/:id", logHandler.GetLog)
	logs.Post("/", requireAuth, logHandler.CreateLog)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
