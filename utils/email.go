package utils

import (
	"bytes"
	"errors"
	"html/template"
	"io"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/steellight541/cinema-app/config"
)

var ErrMailNotConfigured = errors.New("smtp is not configured")

// TicketEmailData feeds the confirmation template.
type TicketEmailData struct {
	Recipient      string
	Username       string
	MovieTitle     string
	ScreeningDate  string
	ReservationRef string
	QRCodePNG      []byte
}

var ticketTemplate = template.Must(template.New("ticket").Parse(`
<h1>Your Ticket Confirmation</h1>
<p>Hi {{.Username}},</p>
<p>Thank you for your reservation!</p>
<p><strong>Movie:</strong> {{.MovieTitle}}</p>
<p><strong>Screening Date:</strong> {{.ScreeningDate}}</p>
<p><strong>Reference:</strong> {{.ReservationRef}}</p>
{{if .HasQR}}<p>Please present the QR code below (also attached) at the entrance:</p>
<img src="cid:ticket-qr.png" alt="Your Ticket QR Code" />{{end}}
<hr>
<p>We look forward to seeing you!</p>
`))

// SendTicketEmail delivers the booking receipt. The reservation is already
// committed when this runs; the caller reports a degraded response on error
// instead of rolling anything back.
func SendTicketEmail(data TicketEmailData) error {
	host := config.Config("SMTP_HOST")
	from := config.Config("SMTP_FROM")
	if host == "" || from == "" {
		return ErrMailNotConfigured
	}
	port, err := strconv.Atoi(config.Config("SMTP_PORT"))
	if err != nil {
		return ErrMailNotConfigured
	}

	if t, parseErr := time.Parse(time.RFC3339, data.ScreeningDate); parseErr == nil {
		data.ScreeningDate = t.Format("Mon, 02 Jan 2006 15:04 MST")
	}

	var body bytes.Buffer
	tmplData := struct {
		TicketEmailData
		HasQR bool
	}{data, len(data.QRCodePNG) > 0}
	if err := ticketTemplate.Execute(&body, tmplData); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", data.Recipient)
	m.SetHeader("Subject", "Your Ticket for "+data.MovieTitle)
	m.SetBody("text/html", body.String())
	if len(data.QRCodePNG) > 0 {
		m.Embed("ticket-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data.QRCodePNG)
			return err
		}))
	}

	d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
	return d.DialAndSend(m)
}
