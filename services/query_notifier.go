// services/query_notifier.go
package services

import (
	"bytes"
	"html/template"
	"log"
	"os"

	"mixerrental-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const customerConfirmationTemplate = `{{define "customer_confirmation"}}
<p>Dear {{.Name}},</p>
<p>Thank you for your inquiry{{if .MachineName}} about <b>{{.MachineName}}</b>{{end}}.
Our team will contact you shortly.</p>
<p>Your reference number is <b>{{.Reference}}</b>.</p>
<p>Regards,<br>{{.CompanyName}}</p>
{{end}}`

const adminNotificationTemplate = `{{define "admin_notification"}}
<p>A new rental inquiry has arrived.</p>
<table>
  <tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
  <tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>
  <tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
  {{if .MachineName}}<tr><td><b>Machine</b></td><td>{{.MachineName}}</td></tr>{{end}}
  <tr><td><b>Reference</b></td><td>{{.Reference}}</td></tr>
</table>
<p><b>Message:</b></p>
<p>{{.Message}}</p>
{{end}}`

// QueryNotifier fans a new inquiry out to the customer (confirmation email),
// the admin inbox, and optionally the admin phone via Twilio SMS/WhatsApp.
// Every channel is best-effort: failures are logged and swallowed.
type QueryNotifier struct {
	email  *EmailService
	client *twilio.RestClient
	tpl    *template.Template
}

func NewQueryNotifier() *QueryNotifier {
	tpl := template.Must(template.New("notifications").Parse(customerConfirmationTemplate))
	template.Must(tpl.Parse(adminNotificationTemplate))

	return &QueryNotifier{
		email: NewEmailService(),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: os.Getenv("TWILIO_ACCOUNT_SID"),
			Password: os.Getenv("TWILIO_AUTH_TOKEN"),
		}),
		tpl: tpl,
	}
}

type queryNotificationData struct {
	Name        string
	Phone       string
	Email       string
	Message     string
	Reference   string
	MachineName string
	CompanyName string
}

// NotifyNewQuery is called from a goroutine after the HTTP response is
// committed; nothing here can fail the submission.
func (n *QueryNotifier) NotifyNewQuery(query models.CustomerQuery, machineName string) {
	data := queryNotificationData{
		Name:        query.Name,
		Phone:       query.Phone,
		Email:       query.Email,
		Message:     query.Message,
		Reference:   query.Reference,
		MachineName: machineName,
		CompanyName: os.Getenv("COMPANY_NAME"),
	}
	if data.CompanyName == "" {
		data.CompanyName = "Mixer Rental Company"
	}

	if !n.email.Configured() {
		log.Println("SMTP not configured, skipping inquiry emails")
	} else {
		if query.Email != "" {
			if body, err := n.render("customer_confirmation", data); err != nil {
				log.Printf("Failed to render confirmation email: %v", err)
			} else if err := n.email.Send(query.Email, "We received your inquiry", body); err != nil {
				log.Printf("Failed to send confirmation email to %s: %v", query.Email, err)
			}
		}

		if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
			if body, err := n.render("admin_notification", data); err != nil {
				log.Printf("Failed to render admin notification: %v", err)
			} else if err := n.email.Send(adminEmail, "New rental inquiry from "+query.Name, body); err != nil {
				log.Printf("Failed to send admin notification: %v", err)
			}
		}
	}

	n.sendAdminSMS(query, machineName)
}

func (n *QueryNotifier) render(name string, data queryNotificationData) (string, error) {
	var buf bytes.Buffer
	if err := n.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// sendAdminSMS pings the admin phone when Twilio is configured. WhatsApp is
// preferred when a WhatsApp sender number is set.
func (n *QueryNotifier) sendAdminSMS(query models.CustomerQuery, machineName string) {
	adminPhone := os.Getenv("ADMIN_PHONE")
	if adminPhone == "" || os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		return
	}

	body := "New inquiry from " + query.Name + " (" + query.Phone + ")"
	if machineName != "" {
		body += " about " + machineName
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	if whatsappFrom := os.Getenv("TWILIO_WHATSAPP_NUMBER"); whatsappFrom != "" {
		params.SetTo("whatsapp:" + adminPhone)
		params.SetFrom("whatsapp:" + whatsappFrom)
	} else {
		params.SetTo(adminPhone)
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send admin SMS: %v", err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Admin SMS sent, SID: %s", *resp.Sid)
	}
}
