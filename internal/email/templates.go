package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// adminTmpl renders the operator-facing notification body. The submitter's
// message is interpolated through html/template so markup in user input is
// escaped, not rendered.
var adminTmpl = template.Must(template.New("admin").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #495057; margin-top: 0;">Contact Details</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
  </div>
  <div style="background-color: #ffffff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px;">
    <h3 style="color: #495057; margin-top: 0;">Message</h3>
    <p style="line-height: 1.6; color: #333;">{{.Message}}</p>
  </div>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #dee2e6; text-align: center; color: #6c757d;">
    <p>This email was sent from the Bodhify.tech contact form.</p>
    <p>Reply directly to this email to respond to {{.Name}}.</p>
  </div>
</div>`))

// ackTmpl renders the thank-you body sent back to the submitter.
var ackTmpl = template.Must(template.New("ack").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; text-align: center;">Welcome to Bodhify.tech!</h2>
  <div style="background-color: #f8f9fa; padding: 30px; border-radius: 8px; margin: 20px 0; text-align: center;">
    <h3 style="color: #007bff; margin-top: 0;">Thank you for reaching out, {{.Name}}!</h3>
    <p style="color: #495057; font-size: 16px; line-height: 1.6;">
      We've received your message and will get back to you within 24 hours.
      In the meantime, feel free to explore our services and learn more about
      what we can do for your business.
    </p>
  </div>
  <div style="text-align: center; margin-top: 30px;">
    <a href="https://bodhify.tech" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Visit Our Website</a>
  </div>
  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #dee2e6; text-align: center; color: #6c757d;">
    <p>Best regards,<br>The Bodhify.tech Team</p>
  </div>
</div>`))

// AdminSubject returns the operator notification subject for a submission.
func AdminSubject(sub Submission) string {
	return fmt.Sprintf("New Contact Form Submission from %s", sub.Name)
}

// AckSubject is the fixed acknowledgment subject.
const AckSubject = "Welcome to Bodhify.tech!"

// renderAdminBody produces the HTML body for the operator notification.
func renderAdminBody(sub Submission) (string, error) {
	var buf bytes.Buffer
	err := adminTmpl.Execute(&buf, map[string]string{
		"Name":    sub.Name,
		"Email":   sub.Email,
		"Message": sub.Message,
		"Date":    sub.ReceivedAt.Format("Jan 2, 2006 15:04:05 MST"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderAckBody produces the HTML body for the acknowledgment email.
func renderAckBody(sub Submission) (string, error) {
	var buf bytes.Buffer
	if err := ackTmpl.Execute(&buf, map[string]string{"Name": sub.Name}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
