package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// InquiryNotificationData feeds the sales-inbox notification template.
type InquiryNotificationData struct {
	ReferenceCode string
	PackageTitle  string
	Name          string
	Email         string
	Phone         string
	Travelers     int
	TravelDate    string
	Message       string
}

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New booking inquiry {{.ReferenceCode}}</h2>
<p><b>Package:</b> {{.PackageTitle}}</p>
<p><b>Name:</b> {{.Name}} &lt;{{.Email}}&gt; {{.Phone}}</p>
<p><b>Travelers:</b> {{.Travelers}}</p>
<p><b>Travel date:</b> {{.TravelDate}}</p>
<p>{{.Message}}</p>
`))

// SendInquiryNotification mails the sales inbox (async, best effort).
func SendInquiryNotification(data InquiryNotificationData) {
	go func() {
		var body bytes.Buffer
		if err := inquiryTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render inquiry email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")
		to := os.Getenv("SALES_INBOX")
		if host == "" || to == "" {
			log.Println("SMTP not configured, skipping inquiry notification")
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking inquiry #"+data.ReferenceCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send inquiry email: %v", err)
		}
	}()
}
