package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"socialnet/src/controllers"
	"socialnet/src/lib"
	"socialnet/src/realtime"
	"socialnet/src/routes"
	"socialnet/src/services"
)

func main() {

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://frontend-service:5173, http://localhost:5173",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Authorization",
	}))

	// Connect to SQLite database
	lib.ConnectDB()

	lib.AutoMigrate()

	hub := realtime.NewHub()

	notificationService := services.NewNotificationService(lib.DB)
	friendService := services.NewFriendService(lib.DB, notificationService, hub)
	messageService := services.NewMessageService(lib.DB, friendService, hub)

	wsHandler := realtime.NewHandler(lib.DB, hub, messageService)

	authController := &controllers.AuthController{DB: lib.DB}
	userController := &controllers.UserController{DB: lib.DB, Friends: friendService}
	friendController := &controllers.FriendController{Friends: friendService}
	messageController := &controllers.MessageController{Messages: messageService}
	notificationController := &controllers.NotificationController{Notifications: notificationService}
	realtimeController := &controllers.RealtimeController{Hub: hub}

	// Register routes
	routes.AuthRoutes(app, authController)
	routes.UserRoutes(app, userController)
	routes.FriendRoutes(app, friendController)
	routes.MessageRoutes(app, messageController)
	routes.NotificationRoutes(app, notificationController)
	routes.RealtimeRoutes(app, wsHandler, realtimeController)

	// Get the server port from environment variable or use default
	var port string = os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Serve static files from the public directory
	app.Static("/", "./public")

	fmt.Printf("Server is running on port %s\n", port)
	// Start the Fiber server on the specified port
	app.Listen(":" + port)
}
