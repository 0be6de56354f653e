package intake

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"facttech_landing_go/services/leads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLead() leads.LeadRequest {
	return leads.LeadRequest{
		Name:     "Ana Pérez",
		Company:  "Acme",
		Email:    "ana@acme.com",
		Phone:    "5551234567",
		Industry: "Retail/Comercio",
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestClientSubmit(t *testing.T) {
	t.Run("Success sends the five wire keys", func(t *testing.T) {
		var got map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &got))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.Equal(t, "Ana Pérez", got["nombre"])
		assert.Equal(t, "Acme", got["empresa"])
		assert.Equal(t, "ana@acme.com", got["email"])
		assert.Equal(t, "5551234567", got["telefono"])
		assert.Equal(t, "Retail/Comercio", got["industria"])
	})

	t.Run("Rejection carries endpoint message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"error":"Duplicate email"}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Duplicate email", rejection.Message)

		kind, msg := Classify(err)
		assert.Equal(t, leads.OutcomeRejected, kind)
		assert.Equal(t, "Duplicate email", msg)
	})

	t.Run("Rejection on error status with JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"success":false,"error":"Teléfono inválido"}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		var rejection *RejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, http.StatusUnprocessableEntity, rejection.StatusCode)
		assert.Contains(t, err.Error(), "Teléfono inválido")
	})

	t.Run("Success flag wins over an error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		require.NoError(t, err)
		kind, msg := Classify(err)
		assert.Equal(t, leads.OutcomeSuccess, kind)
		assert.Empty(t, msg)
	})

	t.Run("Malformed JSON response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{ malformed json }"))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		assert.ErrorIs(t, err, ErrMalformedResponse)
		kind, _ := Classify(err)
		assert.Equal(t, leads.OutcomeMalformed, kind)
	})

	t.Run("Missing success indicator is malformed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("Non-JSON error page is a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		err := NewClient(server.URL, time.Second).Submit(context.Background(), testLead())
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("Connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		err := NewClient(url, time.Second).Submit(context.Background(), testLead())
		assert.ErrorIs(t, err, ErrTransport)
		kind, msg := Classify(err)
		assert.Equal(t, leads.OutcomeTransport, kind)
		assert.Empty(t, msg)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.ReadAll(r.Body)
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		err := NewClient(server.URL, 50*time.Millisecond).Submit(context.Background(), testLead())
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewClient(server.URL, time.Second).Submit(ctx, testLead())
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
		kind, _ := Classify(err)
		assert.Equal(t, leads.OutcomeAborted, kind)
	})
}

func TestClassify(t *testing.T) {
	kind, msg := Classify(nil)
	assert.Equal(t, leads.OutcomeSuccess, kind)
	assert.Empty(t, msg)

	kind, _ = Classify(errors.New("boom"))
	assert.Equal(t, leads.OutcomeTransport, kind)
}

func TestRejectionErrorMessage(t *testing.T) {
	assert.Equal(t, "intake rejected lead (status 200)", (&RejectionError{StatusCode: 200}).Error())
	assert.Equal(t, "intake rejected lead (status 409): dup", (&RejectionError{StatusCode: 409, Message: "dup"}).Error())
}
