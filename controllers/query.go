// controllers/query.go
package controllers

import (
	"errors"
	"net/http"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/services"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var queryNotifier = services.NewQueryNotifier()

// SubmitQueryInput is the public inquiry form payload
type SubmitQueryInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	MachineID *uint  `json:"machine_id"`
	Message   string `json:"message" binding:"required"`
}

// UpdateQueryStatusInput moves an inquiry through its follow-up statuses
type UpdateQueryStatusInput struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

// SubmitQuery accepts a public rental inquiry. Confirmation and admin
// notification emails are dispatched in the background; their failures never
// fail this request.
func SubmitQuery(c *gin.Context) {
	var input SubmitQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var machineName string
	if input.MachineID != nil {
		var machine models.Machine
		if err := config.DB.First(&machine, *input.MachineID).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Machine not found")
			return
		}
		machineName = machine.Name
	}

	query := models.CustomerQuery{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		MachineID: input.MachineID,
		Message:   input.Message,
		Status:    models.QueryNew,
	}

	if err := config.DB.Create(&query).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to submit query")
		return
	}

	go queryNotifier.NotifyNewQuery(query, machineName)

	utils.RespondWithData(c, http.StatusCreated, gin.H{
		"reference": query.Reference,
	}, "Query submitted. We will get back to you shortly.")
}

// GetQueries lists inquiries for the admin, newest first
func GetQueries(c *gin.Context) {
	page, limit, offset := paginationParams(c)

	query := config.DB.Model(&models.CustomerQuery{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count queries")
		return
	}

	var queries []models.CustomerQuery
	if err := query.
		Preload("Machine").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&queries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve queries")
		return
	}

	utils.RespondWithPagination(c, queries, utils.NewPagination(page, limit, total))
}

// UpdateQueryStatus updates an inquiry's follow-up status
func UpdateQueryStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query ID")
		return
	}

	var input UpdateQueryStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var query models.CustomerQuery
	if err := config.DB.First(&query, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Query not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	query.Status = input.Status
	if err := config.DB.Save(&query).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update query")
		return
	}

	utils.RespondWithData(c, http.StatusOK, query, "Query updated")
}

// DeleteQuery removes an inquiry
func DeleteQuery(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid query ID")
		return
	}

	result := config.DB.Delete(&models.CustomerQuery{}, id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete query")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Query not found")
		return
	}

	utils.RespondWithData(c, http.StatusOK, nil, "Query deleted successfully")
}
