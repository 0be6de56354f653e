package handlers

import (
	"facttech_landing_go/config"
	"facttech_landing_go/db"
	"facttech_landing_go/middleware"
	"facttech_landing_go/models"
	"facttech_landing_go/services/i18n"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = testDB.AutoMigrate(&models.LeadSubmission{})
	require.NoError(t, err)

	// Set global DB
	db.DB = testDB
	t.Cleanup(func() { db.DB = nil })

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "test",
		AppURL:            "https://facttech.app",
		DemoReopenOnError: true,
		EmailTestMode:     true,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// pageRequest describes one browser request against a handler
type pageRequest struct {
	method  string
	path    string
	form    url.Values
	visitor string
	htmx    bool
	cfg     *config.Config
}

// do runs handler behind the locale and visitor middleware like the server does
func do(t *testing.T, handler echo.HandlerFunc, r pageRequest) *httptest.ResponseRecorder {
	t.Helper()
	require.NoError(t, i18n.Load())

	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}
	_, c, rec := setupEcho(r.method, r.path, body)
	if r.cfg != nil {
		c.Set("config", r.cfg)
	}
	cfg := c.Get("config").(*config.Config)

	req := c.Request()
	if r.form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if r.htmx {
		req.Header.Set("HX-Request", "true")
	}
	if r.visitor != "" {
		req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: r.visitor})
	}

	chain := middleware.Locale(cfg)(middleware.Visitor(cfg)(handler))
	assert.NoError(t, chain(c))
	return rec
}
