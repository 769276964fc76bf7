package main

import (
	"log"
	"net/http"
	"os"

	"civic-reporter-be/config"
	"civic-reporter-be/models"
	"civic-reporter-be/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

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

	if err := models.EnsureIssueIndexes(config.GetCollection("issues")); err != nil {
		log.Printf("Issue index creation warning: %v", err)
	}
	if err := models.EnsureAdminIndexes(config.GetCollection("admins")); err != nil {
		log.Printf("Admin index creation warning: %v", err)
	}
	if err := models.EnsureCitizenIndexes(config.GetCollection("citizens")); err != nil {
		log.Printf("Citizen index creation warning: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Static preview for uploaded media
	r.Static("/uploads", "./uploads")

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)

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
