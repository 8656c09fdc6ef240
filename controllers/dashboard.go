// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalMachines     int64   `json:"total_machines"`
	AvailableMachines int64   `json:"available_machines"`
	TotalCustomers    int64   `json:"total_customers"`
	NewQueries        int64   `json:"new_queries"`
	PendingQuotations int64   `json:"pending_quotations"`
	MonthQuotedValue  float64 `json:"month_quoted_value"`

	RecentQueries        []models.CustomerQuery `json:"recent_queries"`
	RecentServiceRecords []models.ServiceRecord `json:"recent_service_records"`
}

// GetDashboardOverview returns the admin landing-page summary
func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Machine{}).Where("is_active = ?", true).Count(&overview.TotalMachines)
	config.DB.Model(&models.Machine{}).
		Where("is_active = ? AND status = ?", true, models.MachineAvailable).
		Count(&overview.AvailableMachines)
	config.DB.Model(&models.Customer{}).Where("is_active = ?", true).Count(&overview.TotalCustomers)
	config.DB.Model(&models.CustomerQuery{}).Where("status = ?", models.QueryNew).Count(&overview.NewQueries)
	config.DB.Model(&models.Quotation{}).
		Where("status IN ?", []string{models.QuotationDraft, models.QuotationSent}).
		Count(&overview.PendingQuotations)

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	config.DB.Model(&models.Quotation{}).
		Where("quotation_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(grand_total), 0)").Scan(&overview.MonthQuotedValue)

	if err := config.DB.Preload("Machine").
		Order("created_at desc").Limit(5).
		Find(&overview.RecentQueries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if err := config.DB.Preload("Machine").
		Order("service_date desc, id desc").Limit(5).
		Find(&overview.RecentServiceRecords).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	utils.RespondWithData(c, http.StatusOK, overview, "")
}
