package services

import (
	"bytes"
	"facttech_landing_go/config"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/leads"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/resend/resend-go/v2"
)

// emailTemplateDir is relative to the working directory of the binary
var emailTemplateDir = "templates/emails"

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// buildEmailWithFallback loads a localized template, falling back to the
// default language when the requested one fails to render
func buildEmailWithFallback(templateName string, lang string, tmplData interface{}, toEmail string) *Email {
	htmlBody, textBody, err := loadTemplate(templateName, lang, tmplData)
	if err != nil {
		log.Printf("Error loading %s email template for lang %s: %v", templateName, lang, err)
		if lang != i18n.DefaultLanguage {
			htmlBody, textBody, err = loadTemplate(templateName, i18n.DefaultLanguage, tmplData)
			if err != nil {
				log.Printf("Error loading default '%s' template for %s: %v", i18n.DefaultLanguage, templateName, err)
			}
		}
	}

	return &Email{
		To:       []string{toEmail},
		HTMLBody: htmlBody,
		TextBody: textBody,
	}
}

// loadTemplate loads templateName + "_" + lang + ".html/.txt" from the email
// template directory, falling back to templateName + ".html/.txt" (Spanish)
func loadTemplate(templateName string, lang string, data interface{}) (html string, text string, err error) {
	loadAndExec := func(ext string) (string, error) {
		path := filepath.Join(emailTemplateDir, fmt.Sprintf("%s_%s%s", templateName, lang, ext))
		content, err := os.ReadFile(path)
		if err != nil {
			path = filepath.Join(emailTemplateDir, templateName+ext)
			content, err = os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("failed to read template %s: %w", path, err)
			}
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return "", fmt.Errorf("failed to parse template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to execute template %s: %w", path, err)
		}
		return buf.String(), nil
	}

	htmlContent, err := loadAndExec(".html")
	if err != nil {
		return "", "", err
	}

	textContent, err := loadAndExec(".txt")
	if err != nil {
		return "", "", err
	}

	return htmlContent, textContent, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email in a goroutine so handlers don't block on Resend
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// DemoConfirmationEmailData contains data for the demo confirmation template
type DemoConfirmationEmailData struct {
	Name     string
	Company  string
	Industry string
	Phone    string
	AppURL   string
}

// BuildDemoConfirmationEmail creates the acknowledgment sent to a prospect
// after the intake endpoint accepted their demo request
func BuildDemoConfirmationEmail(lead leads.LeadRequest, appURL, lang string) *Email {
	data := DemoConfirmationEmailData{
		Name:     lead.Name,
		Company:  lead.Company,
		Industry: lead.Industry,
		Phone:    lead.Phone,
		AppURL:   appURL,
	}

	email := buildEmailWithFallback("demo_confirmation", lang, data, lead.Email)
	email.Subject = i18n.Translate(lang, "email.confirmation.subject")
	return email
}
