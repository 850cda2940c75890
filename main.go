package main

import (
	"fmt"
	"log"
	"os"

	"saintjolie-backend/config"
	"saintjolie-backend/models"
	"saintjolie-backend/routes"
	"saintjolie-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Weekday{},
		&models.RegularWindow{},
		&models.SpecialDay{},
		&models.SpecialWindow{},
		&models.ServiceType{},
		&models.ServiceOffering{},
		&models.Appointment{},
	)

	if err := models.SeedWeekdays(config.DB); err != nil {
		log.Fatalf("failed to seed weekdays: %v", err)
	}
}

func main() {
	services.NewCompletionService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
