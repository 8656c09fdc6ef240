// controllers/service_catalog.go
package controllers

import (
	"errors"
	"net/http"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/selection"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubServiceInput is a sub-service definition nested under a category
type SubServiceInput struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// CreateCategoryInput defines a maintenance category and its sub-services
type CreateCategoryInput struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	DisplayOrder int               `json:"display_order"`
	SubServices  []SubServiceInput `json:"sub_services"`
}

// UpdateCategoryInput updates a category; when SubServices is present the
// declared set is replaced wholesale.
type UpdateCategoryInput struct {
	Name         *string            `json:"name"`
	Description  *string            `json:"description"`
	DisplayOrder *int               `json:"display_order"`
	IsActive     *bool              `json:"is_active"`
	SubServices  *[]SubServiceInput `json:"sub_services"`
}

// CreateServiceCategory creates a category with its sub-service definitions
func CreateServiceCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	category := models.ServiceCategory{
		Name:         input.Name,
		Description:  input.Description,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
	}
	for _, sub := range input.SubServices {
		category.SubServices = append(category.SubServices, models.SubService{
			Name:         sub.Name,
			DisplayOrder: sub.DisplayOrder,
			IsActive:     true,
		})
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, category, "Category created")
}

// GetServiceCategories lists the catalog with sub-services, in display order
func GetServiceCategories(c *gin.Context) {
	query := config.DB.Model(&models.ServiceCategory{}).
		Preload("SubServices", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order asc, id asc")
		})
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var categories []models.ServiceCategory
	if err := query.Order("display_order asc, id asc").Find(&categories).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	utils.RespondWithData(c, http.StatusOK, categories, "")
}

// GetServiceCategory retrieves one category with its sub-services
func GetServiceCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.ServiceCategory
	if err := config.DB.Preload("SubServices").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, category, "")
}

// UpdateServiceCategory updates a category, optionally replacing its
// sub-service definitions
func UpdateServiceCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var category models.ServiceCategory
	if err := tx.Preload("SubServices").First(&category, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.DisplayOrder != nil {
		category.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if input.SubServices != nil {
		if err := tx.Where("category_id = ?", category.ID).
			Delete(&models.SubService{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to replace sub-services")
			return
		}
		category.SubServices = nil
		for _, sub := range *input.SubServices {
			category.SubServices = append(category.SubServices, models.SubService{
				CategoryID:   category.ID,
				Name:         sub.Name,
				DisplayOrder: sub.DisplayOrder,
				IsActive:     true,
			})
		}
	}

	if err := tx.Save(&category).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	tx.Commit()
	utils.RespondWithData(c, http.StatusOK, category, "Category updated")
}

// DeleteServiceCategory soft deletes a category and its sub-services
func DeleteServiceCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	result := tx.Delete(&models.ServiceCategory{}, id)
	if result.Error != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err := tx.Where("category_id = ?", id).Delete(&models.SubService{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete sub-services")
		return
	}

	tx.Commit()
	utils.RespondWithData(c, http.StatusOK, nil, "Category deleted successfully")
}

// loadCatalog builds the selection catalog (category -> declared sub-service
// IDs) used to enforce cascade and validation rules on service records.
func loadCatalog(db *gorm.DB) (selection.Catalog, error) {
	var categories []models.ServiceCategory
	if err := db.Preload("SubServices").Find(&categories).Error; err != nil {
		return nil, err
	}

	catalog := make(selection.Catalog, len(categories))
	for _, category := range categories {
		ids := make([]uint, 0, len(category.SubServices))
		for _, sub := range category.SubServices {
			ids = append(ids, sub.ID)
		}
		catalog[category.ID] = ids
	}
	return catalog, nil
}
