package notify

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/mentorlink/mentor-booking-api/internal/config"
	"github.com/mentorlink/mentor-booking-api/internal/models"
	"github.com/mentorlink/mentor-booking-api/internal/timezone"
)

// Mailer sends booking notifications. Every send is fire-and-forget:
// failures are logged and never reach the caller.
type Mailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewMailer(cfg *config.Config) *Mailer {
	if cfg.SendgridAPIKey == "" || cfg.SendgridFromEmail == "" {
		log.Println("sendgrid not configured, booking emails disabled")
		return &Mailer{}
	}

	return &Mailer{
		client:    sendgrid.NewSendClient(cfg.SendgridAPIKey),
		fromEmail: cfg.SendgridFromEmail,
		fromName:  cfg.SendgridFromName,
	}
}

// BookingCreated emails both parties about a new booking. Times are shown
// in the mentor's timezone for the mentor and UTC for the student.
func (m *Mailer) BookingCreated(b *models.Booking, mentor, student *models.User, mentorTZ string) {
	when := b.SessionStart.UTC().Format("02 Jan 2006 15:04 MST")
	mentorWhen := b.SessionStart.In(timezone.Location(mentorTZ)).Format("02 Jan 2006 15:04 MST")

	m.send(
		student.Email, student.Name,
		fmt.Sprintf("Your session with %s is booked - %s", mentor.Name, b.Code),
		fmt.Sprintf(
			"Hi %s,\n\nYour session with %s is booked.\n\n"+
				"Booking code: %s\nStarts: %s\nDuration: %d minutes\n\n"+
				"You will be notified once your mentor confirms.",
			student.Name, mentor.Name, b.Code, when, b.DurationMinutes,
		),
	)

	m.send(
		mentor.Email, mentor.Name,
		fmt.Sprintf("New booking from %s - %s", student.Name, b.Code),
		fmt.Sprintf(
			"Hi %s,\n\n%s booked a session with you.\n\n"+
				"Booking code: %s\nStarts: %s\nDuration: %d minutes\n\n"+
				"Confirm or decline it from your dashboard.",
			mentor.Name, student.Name, b.Code, mentorWhen, b.DurationMinutes,
		),
	)
}

// StatusChanged notifies the party that did not drive the change.
func (m *Mailer) StatusChanged(b *models.Booking, recipient *models.User) {
	m.send(
		recipient.Email, recipient.Name,
		fmt.Sprintf("Booking %s is now %s", b.Code, b.Status),
		fmt.Sprintf(
			"Hi %s,\n\nBooking %s changed status to %s.\n\nStarts: %s",
			recipient.Name, b.Code, b.Status,
			b.SessionStart.UTC().Format("02 Jan 2006 15:04 MST"),
		),
	)
}

func (m *Mailer) send(toEmail, toName, subject, body string) {
	if m.client == nil {
		return
	}

	go func() {
		from := mail.NewEmail(m.fromName, m.fromEmail)
		to := mail.NewEmail(toName, toEmail)
		msg := mail.NewSingleEmail(from, subject, to, body, "")

		resp, err := m.client.Send(msg)
		if err != nil {
			log.Printf("email to %s failed: %v", toEmail, err)
			return
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			log.Printf("email to %s rejected: status %d body %s", toEmail, resp.StatusCode, resp.Body)
		}
	}()
}
