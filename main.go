package main

import (
	"log"
	"os"

	"stayhub/config"
	"stayhub/jobs"
	"stayhub/models"
	"stayhub/routes"
	"stayhub/services"
	"stayhub/services/logger"

	"github.com/joho/godotenv"
)

func migrateTables() {
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found, falling back to the environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	reminderService := services.NewReminderService(config.DB, logger.NewDefaultLogger(logger.InfoLevel))
	jobs.SetCheckInReminder(reminderService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
