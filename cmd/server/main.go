package main

import (
	"log"
	"os"
	"xinquan/internal/db"
	"xinquan/internal/handlers"
	"xinquan/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	checkInHandler := handlers.NewCheckInHandler()
	friendHandler := handlers.NewFriendHandler()
	presenceHandler := handlers.NewPresenceHandler()
	profileHandler := handlers.NewProfileHandler()
	settingsHandler := handlers.NewSettingsHandler()

	// Public Routes
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/signin", authHandler.Signin)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/checkin", checkInHandler.Record)
		authorized.GET("/history", checkInHandler.History)

		authorized.GET("/friends", friendHandler.List)
		authorized.POST("/friends/request", friendHandler.Request)
		authorized.POST("/friends/respond", friendHandler.Respond)
		authorized.DELETE("/friends/remove", friendHandler.Remove)

		authorized.GET("/emotional-presence", presenceHandler.Feed)
		authorized.POST("/emotional-presence/thought", presenceHandler.SaveThought)
		authorized.DELETE("/emotional-presence/thought", presenceHandler.ClearThought)

		authorized.GET("/profile/me", profileHandler.Me)
		authorized.GET("/profile/:publicId", profileHandler.Show)
		authorized.PUT("/profile", profileHandler.Update)
		authorized.PUT("/profile/privacy", profileHandler.UpdatePrivacy)

		authorized.GET("/settings", settingsHandler.Show)
		authorized.POST("/settings", settingsHandler.Update)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("XinQuan server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
