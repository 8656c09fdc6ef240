package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"mixerrental-backend/config"
	"mixerrental-backend/controllers"
	"mixerrental-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// queryRateLimiter caps the public inquiry endpoint at 5 requests per 15
// minutes per client IP.
func queryRateLimiter() gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 15 * time.Minute,
		Limit:  5,
	}
	instance := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": "Too many inquiries submitted. Please try again after 15 minutes.",
		})
	}))
}

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"http://localhost:3000"}
}

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public website endpoints
	api := r.Group("/api")
	{
		api.POST("/customer/query", queryRateLimiter(), controllers.SubmitQuery)
	}

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		machines := admin.Group("/machines")
		{
			machines.POST("", controllers.CreateMachine)
			machines.GET("", controllers.GetMachines)
			machines.PUT("/bulk/update", controllers.BulkUpdateMachines)
			machines.GET("/:id", controllers.GetMachine)
			machines.PUT("/:id", controllers.UpdateMachine)
			machines.PATCH("/:id/toggle-status", controllers.ToggleMachineStatus)
			machines.DELETE("/:id", controllers.DeleteMachine)
		}

		customers := admin.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/search", controllers.SearchCustomers)
			customers.GET("/export", controllers.ExportCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		categories := admin.Group("/service-categories")
		{
			categories.POST("", controllers.CreateServiceCategory)
			categories.GET("", controllers.GetServiceCategories)
			categories.GET("/:id", controllers.GetServiceCategory)
			categories.PUT("/:id", controllers.UpdateServiceCategory)
			categories.DELETE("/:id", controllers.DeleteServiceCategory)
		}

		records := admin.Group("/service-records")
		{
			records.POST("", controllers.CreateServiceRecord)
			records.GET("", controllers.GetServiceRecords)
			records.GET("/:id", controllers.GetServiceRecord)
			records.GET("/:id/pdf", controllers.ExportServiceRecordPDF)
			records.PUT("/:id", controllers.UpdateServiceRecord)
			records.DELETE("/:id", controllers.DeleteServiceRecord)
		}

		quotations := admin.Group("/quotations")
		{
			quotations.POST("", controllers.CreateQuotation)
			quotations.GET("", controllers.GetQuotations)
			quotations.GET("/:id", controllers.GetQuotation)
			quotations.GET("/:id/pdf", controllers.ExportQuotationPDF)
			quotations.PUT("/:id", controllers.UpdateQuotation)
			quotations.DELETE("/:id", controllers.DeleteQuotation)
		}

		queries := admin.Group("/queries")
		{
			queries.GET("", controllers.GetQueries)
			queries.PUT("/:id/status", controllers.UpdateQueryStatus)
			queries.DELETE("/:id", controllers.DeleteQuery)
		}

		admin.GET("/company", controllers.GetCompanyProfile)
		admin.PUT("/company", controllers.UpdateCompanyProfile)

		admin.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
