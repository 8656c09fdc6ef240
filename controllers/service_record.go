// controllers/service_record.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/selection"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceRecordInput is the submitted form payload. Required fields are
// checked manually so every violation lands in one field-keyed error map
// instead of failing on the first binding error.
type ServiceRecordInput struct {
	MachineID    uint                        `json:"machine_id"`
	ServiceDate  string                      `json:"service_date"`
	EngineHours  float64                     `json:"engine_hours"`
	SiteLocation string                      `json:"site_location"`
	Operator     string                      `json:"operator"`
	GeneralNotes string                      `json:"general_notes"`
	Services     []selection.CategoryPayload `json:"services"`
}

// validateServiceRecord collects all violations; submission is blocked when
// any are present. Returns the parsed date and the normalized services array
// (unselected categories dropped) on success.
func validateServiceRecord(db *gorm.DB, input ServiceRecordInput) (time.Time, []selection.CategoryPayload, selection.Errors) {
	errs := selection.Errors{}

	var serviceDate time.Time
	if input.ServiceDate == "" {
		errs["service_date"] = "Service date is required"
	} else {
		parsed, err := utils.ParseDate(input.ServiceDate)
		if err != nil {
			errs["service_date"] = "Service date must be in YYYY-MM-DD format"
		} else {
			serviceDate = parsed
		}
	}

	if input.MachineID == 0 {
		errs["machine_id"] = "Machine is required"
	} else {
		var machine models.Machine
		if err := db.First(&machine, input.MachineID).Error; err != nil {
			errs["machine_id"] = "Machine not found"
		}
	}

	if strings.TrimSpace(input.Operator) == "" {
		errs["operator"] = "Operator is required"
	}

	catalog, err := loadCatalog(db)
	if err != nil {
		errs["services"] = "Failed to load service catalog"
		return serviceDate, nil, errs
	}

	state := selection.FromPayload(input.Services)
	for field, message := range selection.Validate(catalog, state) {
		errs[field] = message
	}

	if len(errs) > 0 {
		return serviceDate, nil, errs
	}
	return serviceDate, state.Payload(), nil
}

func buildRecordEntries(services []selection.CategoryPayload) []models.ServiceRecordCategory {
	entries := make([]models.ServiceRecordCategory, 0, len(services))
	for _, category := range services {
		entry := models.ServiceRecordCategory{
			CategoryID:   category.CategoryID,
			WasPerformed: category.WasPerformed,
			ServiceNotes: category.ServiceNotes,
		}
		for _, sub := range category.SubServices {
			entry.SubServices = append(entry.SubServices, models.ServiceRecordSubService{
				SubServiceID:    sub.ID,
				WasPerformed:    sub.WasPerformed,
				SubServiceNotes: sub.SubServiceNotes,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

// CreateServiceRecord records a maintenance event for a machine
func CreateServiceRecord(c *gin.Context) {
	var input ServiceRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceDate, services, errs := validateServiceRecord(config.DB, input)
	if errs != nil {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	record := models.ServiceRecord{
		MachineID:    input.MachineID,
		ServiceDate:  serviceDate,
		EngineHours:  input.EngineHours,
		SiteLocation: input.SiteLocation,
		Operator:     input.Operator,
		GeneralNotes: input.GeneralNotes,
		Categories:   buildRecordEntries(services),
	}

	if err := config.DB.Create(&record).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service record")
		return
	}

	reloaded, err := loadServiceRecord(config.DB, record.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load service record")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, reloaded, "Service record created")
}

func loadServiceRecord(db *gorm.DB, id uint) (*models.ServiceRecord, error) {
	var record models.ServiceRecord
	err := db.
		Preload("Machine").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_id asc")
		}).
		Preload("Categories.Category").
		Preload("Categories.SubServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_service_id asc")
		}).
		Preload("Categories.SubServices.SubService").
		First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetServiceRecords lists service records, newest first
func GetServiceRecords(c *gin.Context) {
	page, limit, offset := paginationParams(c)

	query := config.DB.Model(&models.ServiceRecord{})
	if machineID := c.Query("machine_id"); machineID != "" {
		query = query.Where("machine_id = ?", machineID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count service records")
		return
	}

	var records []models.ServiceRecord
	if err := query.
		Preload("Machine").
		Preload("Categories").
		Preload("Categories.Category").
		Preload("Categories.SubServices").
		Order("service_date desc, id desc").
		Offset(offset).Limit(limit).
		Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service records")
		return
	}

	utils.RespondWithPagination(c, records, utils.NewPagination(page, limit, total))
}

// GetServiceRecord retrieves one service record with its full nested tree
func GetServiceRecord(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service record ID")
		return
	}

	record, err := loadServiceRecord(config.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, record, "")
}

// UpdateServiceRecord replaces a service record and its nested entries
func UpdateServiceRecord(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service record ID")
		return
	}

	var input ServiceRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceDate, services, errs := validateServiceRecord(config.DB, input)
	if errs != nil {
		utils.RespondWithValidationErrors(c, errs)
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var record models.ServiceRecord
	if err := tx.Preload("Categories").First(&record, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Replace nested entries wholesale
	for _, entry := range record.Categories {
		if err := tx.Where("record_category_id = ?", entry.ID).
			Delete(&models.ServiceRecordSubService{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing entries")
			return
		}
	}
	if err := tx.Where("service_record_id = ?", record.ID).
		Delete(&models.ServiceRecordCategory{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing entries")
		return
	}

	record.MachineID = input.MachineID
	record.ServiceDate = serviceDate
	record.EngineHours = input.EngineHours
	record.SiteLocation = input.SiteLocation
	record.Operator = input.Operator
	record.GeneralNotes = input.GeneralNotes
	record.Categories = buildRecordEntries(services)

	if err := tx.Save(&record).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service record")
		return
	}

	tx.Commit()

	reloaded, err := loadServiceRecord(config.DB, record.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load service record")
		return
	}

	utils.RespondWithData(c, http.StatusOK, reloaded, "Service record updated")
}

// DeleteServiceRecord removes a service record and its nested entries
func DeleteServiceRecord(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service record ID")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var record models.ServiceRecord
	if err := tx.Preload("Categories").First(&record, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	for _, entry := range record.Categories {
		if err := tx.Where("record_category_id = ?", entry.ID).
			Delete(&models.ServiceRecordSubService{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service record entries")
			return
		}
	}
	if err := tx.Where("service_record_id = ?", record.ID).
		Delete(&models.ServiceRecordCategory{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service record entries")
		return
	}
	if err := tx.Delete(&record).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service record")
		return
	}

	tx.Commit()
	utils.RespondWithData(c, http.StatusOK, nil, "Service record deleted successfully")
}

// ExportServiceRecordPDF renders the service report for one record
func ExportServiceRecordPDF(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service record ID")
		return
	}

	record, err := loadServiceRecord(config.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	company, err := loadCompanyProfile(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company profile")
		return
	}

	pdf, err := pdfService.ServiceReportPDF(record, company)
	if err != nil {
		utils.RespondWithServerError(c, err)
		return
	}

	filename := fmt.Sprintf("service-report-%d.pdf", record.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
