// services/pdf_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"mixerrental-backend/models"
	"mixerrental-backend/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// PDFService renders quotation and service report documents by merging the
// record with the standing company details into an HTML template and printing
// it through a short-lived headless Chrome process.
type PDFService struct {
	tpl *template.Template
}

func NewPDFService() *PDFService {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"add1":  func(i int) int { return i + 1 },
	}
	tpl := template.Must(template.New("documents").Funcs(funcs).Parse(quotationTemplate))
	template.Must(tpl.Parse(serviceReportTemplate))
	return &PDFService{tpl: tpl}
}

type companyView struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTNumber string
	LogoURL   template.URL
	SignURL   template.URL
}

func buildCompanyView(company *models.CompanyProfile) companyView {
	view := companyView{
		Name:      company.Name,
		Address:   company.Address,
		Phone:     company.Phone,
		Email:     company.Email,
		GSTNumber: company.GSTNumber,
	}
	if company.LogoPath != "" {
		view.LogoURL = template.URL("file://" + company.LogoPath)
	}
	if company.SignaturePath != "" {
		view.SignURL = template.URL("file://" + company.SignaturePath)
	}
	return view
}

type quotationView struct {
	Company         companyView
	Number          string
	Date            string
	ValidUntil      string
	Status          string
	Customer        models.Customer
	Items           []models.QuotationItem
	Subtotal        float64
	TotalGst        float64
	GrandTotal      float64
	AmountInWords   string
	Notes           string
	TermsConditions string
}

// QuotationPDF renders a quotation. Monetary totals come verbatim from the
// stored row; only the words line is derived here.
func (s *PDFService) QuotationPDF(quotation *models.Quotation, company *models.CompanyProfile) ([]byte, error) {
	view := quotationView{
		Company:         buildCompanyView(company),
		Number:          quotation.QuotationNumber,
		Date:            quotation.QuotationDate.Format("02 Jan 2006"),
		ValidUntil:      quotation.ValidUntil.Format("02 Jan 2006"),
		Status:          quotation.Status,
		Customer:        quotation.Customer,
		Items:           quotation.Items,
		Subtotal:        quotation.Subtotal,
		TotalGst:        quotation.TotalGst,
		GrandTotal:      quotation.GrandTotal,
		AmountInWords:   utils.NumberToWords(quotation.GrandTotal),
		Notes:           quotation.Notes,
		TermsConditions: quotation.TermsConditions,
	}

	var html bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&html, "quotation", view); err != nil {
		return nil, fmt.Errorf("failed to render quotation template: %w", err)
	}
	return s.renderPDF(html.Bytes())
}

type serviceReportView struct {
	Company      companyView
	RecordID     uint
	Machine      models.Machine
	ServiceDate  string
	EngineHours  float64
	SiteLocation string
	Operator     string
	GeneralNotes string
	Categories   []models.ServiceRecordCategory
}

// ServiceReportPDF renders the maintenance report for one service record.
func (s *PDFService) ServiceReportPDF(record *models.ServiceRecord, company *models.CompanyProfile) ([]byte, error) {
	view := serviceReportView{
		Company:      buildCompanyView(company),
		RecordID:     record.ID,
		Machine:      record.Machine,
		ServiceDate:  record.ServiceDate.Format("02 Jan 2006"),
		EngineHours:  record.EngineHours,
		SiteLocation: record.SiteLocation,
		Operator:     record.Operator,
		GeneralNotes: record.GeneralNotes,
		Categories:   record.Categories,
	}

	var html bytes.Buffer
	if err := s.tpl.ExecuteTemplate(&html, "service_report", view); err != nil {
		return nil, fmt.Errorf("failed to render service report template: %w", err)
	}
	return s.renderPDF(html.Bytes())
}

// renderPDF writes the HTML to a temp file, prints it to PDF with a headless
// browser launched for this document only, and cleans up both on every path.
func (s *PDFService) renderPDF(html []byte) ([]byte, error) {
	tmpPath := filepath.Join(os.TempDir(), "mixerrental-"+uuid.NewString()+".html")
	if err := os.WriteFile(tmpPath, html, 0600); err != nil {
		return nil, fmt.Errorf("failed to write temp html: %w", err)
	}
	defer os.Remove(tmpPath)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}

	return pdf, nil
}
