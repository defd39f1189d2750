package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-admin/config"
	"resto-admin/controllers"
	_ "resto-admin/docs"
	"resto-admin/middleware"
	"resto-admin/models"
	"resto-admin/repositories"
	"resto-admin/routes"
	"resto-admin/services"

	"github.com/gin-gonic/gin"
)

// @title Resto Admin API
// @version 1.0
// @description Back-office API for restaurant order, menu, and floor plan management
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	var (
		categoryStore repositories.CategoryStore
		itemStore     repositories.MenuItemStore
		orderStore    repositories.OrderStore
		tableStore    repositories.TableStore
		customerStore repositories.CustomerStore
		userStore     repositories.UserStore
	)

	if config.AppConfig.DataBackend == "memory" {
		log.Println("Using in-memory data backend")
		categoryStore = repositories.NewMemoryCategoryStore()
		itemStore = repositories.NewMemoryMenuItemStore()
		orderStore = repositories.NewMemoryOrderStore()
		memTables := repositories.NewMemoryTableStore()
		memTables.SeedFloorPlan()
		tableStore = memTables
		customerStore = repositories.NewMemoryCustomerStore()
		userStore = repositories.NewMemoryUserStore()
	} else {
		models.InitDB()
		defer models.CloseDB()
		categoryStore = repositories.NewCategoryRepository()
		itemStore = repositories.NewMenuRepository()
		orderStore = repositories.NewOrderRepository()
		tableStore = repositories.NewTableRepository()
		customerStore = repositories.NewCustomerRepository()
		userStore = repositories.NewUserRepository()
	}

	models.InitRedis()
	defer models.CloseRedis()

	var notifier services.Notifier = services.LogNotifier{}
	if config.AppConfig.AMQPURL != "" {
		amqpNotifier, err := services.NewAMQPNotifier(config.AppConfig.AMQPURL, config.AppConfig.NotifyQueue)
		if err != nil {
			log.Printf("AMQP unavailable, logging notifications instead: %v", err)
		} else {
			defer amqpNotifier.Close()
			notifier = amqpNotifier
		}
	}

	authService := services.NewAuthService(userStore)
	menuService := services.NewMenuService(categoryStore, itemStore, notifier)
	orderService := services.NewOrderService(orderStore, customerStore, notifier)
	tableService := services.NewTableService(tableStore, notifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := services.NewBoardTicker(orderStore)
	ticker.Start(ctx)
	defer ticker.Stop()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router,
		controllers.NewAuthController(authService),
		controllers.NewCategoryController(menuService),
		controllers.NewMenuController(menuService),
		controllers.NewOrderController(orderService, ticker),
		controllers.NewTableController(tableService),
	)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.Port)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
