// controllers/machine.go
package controllers

import (
	"errors"
	"net/http"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateMachineInput defines the expected JSON structure for creating a machine
type CreateMachineInput struct {
	Name         string  `json:"name" binding:"required"`
	MachineModel string  `json:"machine_model"`
	SerialNumber string  `json:"serial_number" binding:"required"`
	Description  string  `json:"description"`
	DayRate      float64 `json:"day_rate" binding:"min=0"`
	WeekRate     float64 `json:"week_rate" binding:"min=0"`
	MonthRate    float64 `json:"month_rate" binding:"min=0"`
	Status       string  `json:"status" binding:"omitempty,oneof=available rented maintenance"`
}

// UpdateMachineInput defines the expected JSON structure for updating a machine
type UpdateMachineInput struct {
	Name         *string  `json:"name"`
	MachineModel *string  `json:"machine_model"`
	SerialNumber *string  `json:"serial_number"`
	Description  *string  `json:"description"`
	DayRate      *float64 `json:"day_rate"`
	WeekRate     *float64 `json:"week_rate"`
	MonthRate    *float64 `json:"month_rate"`
	Status       *string  `json:"status" binding:"omitempty,oneof=available rented maintenance"`
	IsActive     *bool    `json:"is_active"`
}

// BulkUpdateMachinesInput applies the same field changes to a set of machines.
type BulkUpdateMachinesInput struct {
	MachineIDs []uint   `json:"machine_ids" binding:"required,min=1"`
	Status     *string  `json:"status" binding:"omitempty,oneof=available rented maintenance"`
	IsActive   *bool    `json:"is_active"`
	DayRate    *float64 `json:"day_rate"`
	WeekRate   *float64 `json:"week_rate"`
	MonthRate  *float64 `json:"month_rate"`
}

// CreateMachine adds a machine to the rental inventory
func CreateMachine(c *gin.Context) {
	var input CreateMachineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Serial numbers are unique across the fleet
	var existing models.Machine
	if err := config.DB.Where("serial_number = ?", input.SerialNumber).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Machine with this serial number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	machine := models.Machine{
		Name:         input.Name,
		MachineModel: input.MachineModel,
		SerialNumber: input.SerialNumber,
		Description:  input.Description,
		DayRate:      input.DayRate,
		WeekRate:     input.WeekRate,
		MonthRate:    input.MonthRate,
		Status:       models.MachineAvailable,
		IsActive:     true,
	}
	if input.Status != "" {
		machine.Status = input.Status
	}

	if err := config.DB.Create(&machine).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create machine")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, machine, "Machine created")
}

// GetMachines lists machines with optional status/search filters
func GetMachines(c *gin.Context) {
	page, limit, offset := paginationParams(c)

	query := config.DB.Model(&models.Machine{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR machine_model LIKE ? OR serial_number LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count machines")
		return
	}

	var machines []models.Machine
	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&machines).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve machines")
		return
	}

	utils.RespondWithPagination(c, machines, utils.NewPagination(page, limit, total))
}

// GetMachine retrieves a specific machine by ID
func GetMachine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	var machine models.Machine
	if err := config.DB.First(&machine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Machine not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, machine, "")
}

// UpdateMachine updates an existing machine
func UpdateMachine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	var input UpdateMachineInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var machine models.Machine
	if err := config.DB.First(&machine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Machine not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.SerialNumber != nil && *input.SerialNumber != machine.SerialNumber {
		var existing models.Machine
		if err := config.DB.Where("serial_number = ?", *input.SerialNumber).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another machine with this serial number already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		machine.SerialNumber = *input.SerialNumber
	}

	if input.Name != nil {
		machine.Name = *input.Name
	}
	if input.MachineModel != nil {
		machine.MachineModel = *input.MachineModel
	}
	if input.Description != nil {
		machine.Description = *input.Description
	}
	if input.DayRate != nil {
		machine.DayRate = *input.DayRate
	}
	if input.WeekRate != nil {
		machine.WeekRate = *input.WeekRate
	}
	if input.MonthRate != nil {
		machine.MonthRate = *input.MonthRate
	}
	if input.Status != nil {
		machine.Status = *input.Status
	}
	if input.IsActive != nil {
		machine.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&machine).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update machine")
		return
	}

	utils.RespondWithData(c, http.StatusOK, machine, "Machine updated")
}

// ToggleMachineStatus flips the machine's active flag
func ToggleMachineStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	var machine models.Machine
	if err := config.DB.First(&machine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Machine not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	machine.IsActive = !machine.IsActive
	if err := config.DB.Save(&machine).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update machine")
		return
	}

	utils.RespondWithData(c, http.StatusOK, machine, "Machine status updated")
}

// BulkUpdateMachines updates a field set across many machines at once
func BulkUpdateMachines(c *gin.Context) {
	var input BulkUpdateMachinesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.DayRate != nil {
		updates["day_rate"] = *input.DayRate
	}
	if input.WeekRate != nil {
		updates["week_rate"] = *input.WeekRate
	}
	if input.MonthRate != nil {
		updates["month_rate"] = *input.MonthRate
	}
	if len(updates) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	result := config.DB.Model(&models.Machine{}).
		Where("id IN ?", input.MachineIDs).
		Updates(updates)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update machines")
		return
	}

	utils.RespondWithData(c, http.StatusOK, gin.H{"updated": result.RowsAffected}, "Machines updated")
}

// DeleteMachine soft deletes a machine
func DeleteMachine(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid machine ID")
		return
	}

	result := config.DB.Delete(&models.Machine{}, id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete machine")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Machine not found")
		return
	}

	utils.RespondWithData(c, http.StatusOK, nil, "Machine deleted successfully")
}
