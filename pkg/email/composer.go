package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"go-buildpro-backend/internal/domain"
)

// appointmentTextTemplate is the plain-text body for appointment emails.
// Field order is fixed: Name, Email, Phone, Location, Service Type.
const appointmentTextTemplate = `New Appointment Request

Client Information:
- Name: {{.FullName}}
- Email: {{.Email}}
- Phone: {{.Phone}}
- Location: {{.Location}}
- Service Type: {{.ServiceType}}

Request submitted on: {{.RequestDate}}

Please contact the client as soon as possible to schedule their appointment.

---
BuildPro Construction Management System`

// appointmentHTMLTemplate is the HTML body for appointment emails. Rendered
// with html/template so every field value is escaped against markup injection.
const appointmentHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .header { background-color: #0a2342; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .info-table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        .info-table th, .info-table td { padding: 12px; text-align: left; border-bottom: 1px solid #ddd; }
        .info-table th { background-color: #f7931e; color: white; }
        .footer { background-color: #f8f9fa; padding: 15px; text-align: center; font-size: 12px; color: #666; }
        .highlight { background-color: #fff3cd; padding: 10px; border-left: 4px solid #f7931e; margin: 15px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>New Appointment Request</h1>
    </div>
    <div class="content">
        <div class="highlight">
            <strong>Action Required:</strong> New client appointment request received. Please contact the client as soon as possible.
        </div>
        <h2>Client Information</h2>
        <table class="info-table">
            <tr><th>Name</th><td>{{.FullName}}</td></tr>
            <tr><th>Email</th><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
            <tr><th>Phone</th><td><a href="tel:{{.Phone}}">{{.Phone}}</a></td></tr>
            <tr><th>Location</th><td>{{.Location}}</td></tr>
            <tr><th>Service Type</th><td><strong>{{.ServiceType}}</strong></td></tr>
            <tr><th>Request Date</th><td>{{.RequestDate}}</td></tr>
        </table>
        <h3>Next Steps:</h3>
        <ul>
            <li>Contact the client within 24 hours</li>
            <li>Schedule a consultation or site visit</li>
            <li>Provide a detailed quote</li>
        </ul>
    </div>
    <div class="footer">
        <p>BuildPro Construction Management System<br>
        This email was automatically generated from your website booking form.</p>
    </div>
</body>
</html>`

var (
	textTmpl = texttemplate.Must(texttemplate.New("appointment_text").Parse(appointmentTextTemplate))
	htmlTmpl = htmltemplate.Must(htmltemplate.New("appointment_html").Parse(appointmentHTMLTemplate))
)

// appointmentEmailData holds the rendered field values for both bodies.
type appointmentEmailData struct {
	FullName    string
	Email       string
	Phone       string
	Location    string
	ServiceType string
	RequestDate string
}

// Composer builds notification messages for appointment requests. The
// timestamp is rendered in a configured timezone rather than a hardcoded one.
type Composer struct {
	location *time.Location
}

// NewComposer creates a composer rendering timestamps in the given IANA
// timezone, e.g. "America/New_York".
func NewComposer(timezone string) (*Composer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load email timezone %q: %w", timezone, err)
	}
	return &Composer{location: loc}, nil
}

// Compose builds the subject, plain-text and HTML bodies for an appointment
// request submitted at the given time.
func (c *Composer) Compose(req *domain.AppointmentRequest, at time.Time) (Message, error) {
	data := appointmentEmailData{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		ServiceType: req.ServiceType,
		RequestDate: at.In(c.location).Format("January 2, 2006 at 3:04 PM"),
	}

	var text bytes.Buffer
	if err := textTmpl.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("failed to execute text template: %w", err)
	}

	var html bytes.Buffer
	if err := htmlTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to execute html template: %w", err)
	}

	return Message{
		Subject:  "New Appointment Request from " + sanitizeHeaderValue(req.FullName),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}

// sanitizeHeaderValue strips CR/LF so user-supplied values cannot inject
// additional headers.
func sanitizeHeaderValue(value string) string {
	clean := strings.ReplaceAll(value, "\r", " ")
	clean = strings.ReplaceAll(clean, "\n", " ")
	return strings.TrimSpace(clean)
}
