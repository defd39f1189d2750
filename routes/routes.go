package routes

import (
	"resto-admin/controllers"
	"resto-admin/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine,
	authCtrl *controllers.AuthController,
	categoryCtrl *controllers.CategoryController,
	menuCtrl *controllers.MenuController,
	orderCtrl *controllers.OrderController,
	tableCtrl *controllers.TableController,
) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", categoryCtrl.GetAllCategories)
	router.GET("/categories/:id", categoryCtrl.GetCategoryByID)
	router.GET("/menu", menuCtrl.GetAllItems)
	router.GET("/menu/filter", menuCtrl.FilterItems)
	router.GET("/menu/:id", menuCtrl.GetItemByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile", authCtrl.GetProfile)
		auth.PATCH("/profile/password", authCtrl.ChangePassword)

		auth.GET("/orders", orderCtrl.GetAllOrders)
		auth.GET("/orders/board", orderCtrl.GetBoard)
		auth.GET("/orders/stats", orderCtrl.GetStats)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.PUT("/orders/:id/items", orderCtrl.UpdateOrderItems)
		auth.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		auth.PATCH("/orders/:id/move", orderCtrl.MoveOrder)
		auth.DELETE("/orders/:id", orderCtrl.DeleteOrder)

		auth.GET("/customers", orderCtrl.GetAllCustomers)
		auth.GET("/customers/:id", orderCtrl.GetCustomerByID)

		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/stats", tableCtrl.GetStats)
		auth.GET("/tables/templates", tableCtrl.GetTemplates)
		auth.GET("/tables/:id", tableCtrl.GetTableByID)
		auth.POST("/tables", tableCtrl.CreateTable)
		auth.PATCH("/tables/:id", tableCtrl.UpdateTable)
		auth.PATCH("/tables/:id/move", tableCtrl.MoveTable)
		auth.PATCH("/tables/:id/status", tableCtrl.UpdateTableStatus)
		auth.PATCH("/tables/:id/server", tableCtrl.AssignServer)
		auth.DELETE("/tables/:id", tableCtrl.DeleteTable)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", authCtrl.GetAllUsers)
		admin.DELETE("/users/:id", authCtrl.DeleteUser)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/reorder", categoryCtrl.ReorderCategories)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)

		admin.POST("/menu", menuCtrl.CreateItem)
		admin.PATCH("/menu/availability", menuCtrl.BulkSetAvailability)
		admin.PATCH("/menu/:id", menuCtrl.UpdateItem)
		admin.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)
		admin.DELETE("/menu/:id", menuCtrl.DeleteItem)
	}

	router.Static("/uploads", "./uploads")
}
