package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"roadwatch-be/config"
	"roadwatch-be/controllers"
	"roadwatch-be/repository"
	"roadwatch-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const feedbackSubmitLimit = 20 // submissions per user per 24h

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	if err := config.EnsureDefaultSuperuser(userRepo); err != nil {
		log.Fatalf("Failed to seed superuser: %v", err)
	}

	authController := controllers.NewAuthController(userRepo)
	feedbackController := controllers.NewFeedbackController(feedbackRepo, commentRepo, userRepo)
	commentController := controllers.NewCommentController(feedbackRepo, commentRepo)
	adminController := controllers.NewAdminController(feedbackRepo, commentRepo, userRepo)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(corsConfig))

	// Uploaded road images are served back as static assets.
	r.Static("/uploads", "./uploads")

	routes.AuthRoutes(r, authController)
	routes.FeedbackRoutes(r, feedbackController, commentController, feedbackSubmitLimit)
	routes.AdminRoutes(r, adminController)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
