// controllers/customer.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mixerrental-backend/config"
	"mixerrental-backend/models"
	"mixerrental-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	CompanyName  string `json:"company_name"`
	GSTNumber    string `json:"gst_number"`
	Address      string `json:"address"`
	SiteLocation string `json:"site_location"`
	Notes        string `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	CompanyName  *string `json:"company_name"`
	GSTNumber    *string `json:"gst_number"`
	Address      *string `json:"address"`
	SiteLocation *string `json:"site_location"`
	Notes        *string `json:"notes"`
	IsActive     *bool   `json:"is_active"`
}

// CreateCustomer creates a new customer
func CreateCustomer(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateGSTIN(input.GSTNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid GST number format")
		return
	}

	// Check if phone already exists
	var existing models.Customer
	if err := config.DB.Where("phone = ?", input.Phone).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Customer with this phone number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		CompanyName:  input.CompanyName,
		GSTNumber:    input.GSTNumber,
		Address:      input.Address,
		SiteLocation: input.SiteLocation,
		Notes:        input.Notes,
		IsActive:     true,
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		return
	}

	utils.RespondWithData(c, http.StatusCreated, customer, "Customer created")
}

// GetCustomers lists customers with pagination
func GetCustomers(c *gin.Context) {
	page, limit, offset := paginationParams(c)

	query := config.DB.Model(&models.Customer{})
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count customers")
		return
	}

	var customers []models.Customer
	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	utils.RespondWithPagination(c, customers, utils.NewPagination(page, limit, total))
}

// SearchCustomers matches name, phone or company against the q parameter
func SearchCustomers(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.RespondWithData(c, http.StatusOK, []models.Customer{}, "")
		return
	}

	like := "%" + q + "%"
	var customers []models.Customer
	if err := config.DB.
		Where("name LIKE ? OR phone LIKE ? OR company_name LIKE ?", like, like, like).
		Order("name asc").Limit(25).
		Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to search customers")
		return
	}

	utils.RespondWithData(c, http.StatusOK, customers, "")
}

// ExportCustomers streams the full customer list as an .xlsx blob
func ExportCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("name asc").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Customers"
	index, err := f.NewSheet(sheet)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Name", "Phone", "Email", "Company", "GST Number", "Address", "Site Location", "Active", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	}

	for row, customer := range customers {
		values := []interface{}{
			customer.Name,
			customer.Phone,
			customer.Email,
			customer.CompanyName,
			customer.GSTNumber,
			customer.Address,
			customer.SiteLocation,
			customer.IsActive,
			customer.CreatedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build export")
		return
	}

	filename := fmt.Sprintf("customers-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GetCustomer retrieves a specific customer by ID
func GetCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithData(c, http.StatusOK, customer, "")
}

// UpdateCustomer updates an existing customer
func UpdateCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		if customer.Phone != *input.Phone {
			var existing models.Customer
			if err := config.DB.Where("phone = ?", *input.Phone).
				First(&existing).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another customer with this phone number already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		customer.Phone = *input.Phone
	}
	if input.GSTNumber != nil {
		if !utils.ValidateGSTIN(*input.GSTNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid GST number format")
			return
		}
		customer.GSTNumber = *input.GSTNumber
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.CompanyName != nil {
		customer.CompanyName = *input.CompanyName
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.SiteLocation != nil {
		customer.SiteLocation = *input.SiteLocation
	}
	if input.Notes != nil {
		customer.Notes = *input.Notes
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		return
	}

	utils.RespondWithData(c, http.StatusOK, customer, "Customer updated")
}

// DeleteCustomer soft deletes a customer
func DeleteCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	result := config.DB.Delete(&models.Customer{}, id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	utils.RespondWithData(c, http.StatusOK, nil, "Customer deleted successfully")
}
