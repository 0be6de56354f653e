package services

import (
	"facttech_landing_go/config"
	"facttech_landing_go/services/i18n"
	"facttech_landing_go/services/leads"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEmailTemplateDir(t *testing.T, dir string) {
	t.Helper()
	old := emailTemplateDir
	emailTemplateDir = dir
	t.Cleanup(func() { emailTemplateDir = old })
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	withEmailTemplateDir(t, dir)

	// Base template is Spanish
	os.WriteFile(filepath.Join(dir, "test_template.html"), []byte("<html><body>Hola {{.Name}}</body></html>"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template.txt"), []byte("Hola {{.Name}}"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template_en.html"), []byte("<html><body>Hello {{.Name}}</body></html>"), 0644)
	os.WriteFile(filepath.Join(dir, "test_template_en.txt"), []byte("Hello {{.Name}}"), 0644)

	tplData := struct{ Name string }{Name: "Ana"}

	t.Run("Load Base Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "es", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hola Ana")
		assert.Contains(t, text, "Hola Ana")
	})

	t.Run("Load Localized Template", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "en", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hello Ana")
		assert.Contains(t, text, "Hello Ana")
	})

	t.Run("Fallback to Base when Localized Missing", func(t *testing.T) {
		html, _, err := loadTemplate("test_template", "fr", tplData)
		assert.NoError(t, err)
		assert.Contains(t, html, "Hola Ana")
	})

	t.Run("Template Not Found", func(t *testing.T) {
		_, _, err := loadTemplate("non_existent", "es", tplData)
		assert.Error(t, err)
	})

	t.Run("HTML escapes data", func(t *testing.T) {
		html, text, err := loadTemplate("test_template", "es", struct{ Name string }{Name: "<b>x</b>"})
		assert.NoError(t, err)
		assert.Contains(t, html, "&lt;b&gt;")
		assert.NotContains(t, html, "<b>x</b>")
		assert.Contains(t, text, "&lt;b&gt;")
	})
}

func TestBuildEmailWithFallback(t *testing.T) {
	dir := t.TempDir()
	withEmailTemplateDir(t, dir)

	os.WriteFile(filepath.Join(dir, "test_build.html"), []byte("HTML {{.Val}}"), 0644)
	os.WriteFile(filepath.Join(dir, "test_build.txt"), []byte("Text {{.Val}}"), 0644)
	// A broken localized template falls back to the default language
	os.WriteFile(filepath.Join(dir, "test_build_en.html"), []byte("HTML {{.Val"), 0644)
	os.WriteFile(filepath.Join(dir, "test_build_en.txt"), []byte("Text {{.Val}}"), 0644)

	email := buildEmailWithFallback("test_build", "es", map[string]string{"Val": "OK"}, "test@example.com")
	assert.Equal(t, []string{"test@example.com"}, email.To)
	assert.Equal(t, "HTML OK", email.HTMLBody)
	assert.Equal(t, "Text OK", email.TextBody)

	email = buildEmailWithFallback("test_build", "en", map[string]string{"Val": "OK"}, "test@example.com")
	assert.Equal(t, "HTML OK", email.HTMLBody)
}

func TestBuildDemoConfirmationEmail(t *testing.T) {
	require.NoError(t, i18n.Load())
	withEmailTemplateDir(t, filepath.Join("..", "templates", "emails"))

	lead := leads.LeadRequest{
		Name:     "Ana Pérez",
		Company:  "Acme S.A.",
		Email:    "ana@acme.com",
		Phone:    "+57 300 000 0000",
		Industry: "Retail",
	}

	email := BuildDemoConfirmationEmail(lead, "https://facttech.app", "es")
	assert.Equal(t, []string{"ana@acme.com"}, email.To)
	assert.Equal(t, i18n.Translate("es", "email.confirmation.subject"), email.Subject)
	assert.Contains(t, email.TextBody, "Hola Ana Pérez")
	assert.Contains(t, email.TextBody, "Acme S.A.")
	assert.Contains(t, email.HTMLBody, "https://facttech.app")

	email = BuildDemoConfirmationEmail(lead, "https://facttech.app", "en")
	assert.Contains(t, email.TextBody, "Hi Ana Pérez")
	assert.NotEqual(t, i18n.Translate("es", "email.confirmation.subject"), email.Subject)
}

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: true,
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.NoError(t, err)
}

func TestSendEmail_NoApiKey(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "",
	}
	email := &Email{
		To:       []string{"test@example.com"},
		Subject:  "Test",
		HTMLBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestSendEmail_NoBody(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "key",
	}
	email := &Email{
		To:      []string{"test@example.com"},
		Subject: "Test",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email must have either HTMLBody or TextBody")
}

func TestTruncate(t *testing.T) {
	s := "Hello World"
	assert.Equal(t, "Hello", truncate(s, 5))
	assert.Equal(t, "Hello World", truncate(s, 20))
}
