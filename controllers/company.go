// controllers/company.go
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

// UpdateCompanyInput defines the expected JSON structure for the company profile
type UpdateCompanyInput struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	GSTNumber     *string `json:"gst_number"`
	LogoPath      *string `json:"logo_path"`
	SignaturePath *string `json:"signature_path"`
	BankName      *string `json:"bank_name"`
	BankAccountNo *string `json:"bank_account_no"`
	BankIFSC      *string `json:"bank_ifsc"`
	BankBranch    *string `json:"bank_branch"`
}

// loadCompanyProfile returns the single standing company row, seeding a
// placeholder if the table is empty.
func loadCompanyProfile(db *gorm.DB) (*models.CompanyProfile, error) {
	var company models.CompanyProfile
	err := db.First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		company = models.CompanyProfile{Name: "Mixer Rental Company"}
		if err := db.Create(&company).Error; err != nil {
			return nil, err
		}
		return &company, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompanyProfile returns the standing company details
func GetCompanyProfile(c *gin.Context) {
	company, err := loadCompanyProfile(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company profile")
		return
	}

	utils.RespondWithData(c, http.StatusOK, company, "")
}

// UpdateCompanyProfile updates the standing company details used on PDFs
func UpdateCompanyProfile(c *gin.Context) {
	var input UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	company, err := loadCompanyProfile(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load company profile")
		return
	}

	if input.GSTNumber != nil {
		if !utils.ValidateGSTIN(*input.GSTNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid GST number format")
			return
		}
		company.GSTNumber = *input.GSTNumber
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.Phone != nil {
		company.Phone = *input.Phone
	}
	if input.Email != nil {
		company.Email = *input.Email
	}
	if input.LogoPath != nil {
		company.LogoPath = *input.LogoPath
	}
	if input.SignaturePath != nil {
		company.SignaturePath = *input.SignaturePath
	}
	if input.BankName != nil {
		company.BankName = *input.BankName
	}
	if input.BankAccountNo != nil {
		company.BankAccountNo = *input.BankAccountNo
	}
	if input.BankIFSC != nil {
		company.BankIFSC = *input.BankIFSC
	}
	if input.BankBranch != nil {
		company.BankBranch = *input.BankBranch
	}

	if err := config.DB.Save(company).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update company profile")
		return
	}

	utils.RespondWithData(c, http.StatusOK, company, "Company profile updated")
}
