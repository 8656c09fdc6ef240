package main

import (
	"fmt"
	"log"
	"os"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/routes"
	"mixerrental-backend/services"

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
		&models.CompanyProfile{},
		&models.Machine{},
		&models.Customer{},
		&models.ServiceCategory{},
		&models.SubService{},
		&models.ServiceRecord{},
		&models.ServiceRecordCategory{},
		&models.ServiceRecordSubService{},
		&models.Quotation{},
		&models.QuotationItem{},
		&models.CustomerQuery{},
	)
}

func main() {
	expiry := services.NewExpiryService(config.DB)
	expiry.StartScheduler()

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
