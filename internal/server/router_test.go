package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/08Abhinay/portfolio/internal/config"
	"github.com/08Abhinay/portfolio/internal/contact"
	"github.com/08Abhinay/portfolio/internal/content"
	"github.com/08Abhinay/portfolio/internal/mocks"
	"github.com/08Abhinay/portfolio/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T, mail config.Mail, m contact.Mailer) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	svc := contact.NewContactService(mail, m, log)
	r := NewRouter(Deps{
		Config:  config.Server{Env: "test", RequestTimeout: 5 * time.Second, MaxBodyBytes: 1024},
		Log:     log,
		Contact: contact.NewContactHandler(svc),
		Content: content.NewContentHandler(content.DefaultCatalog()),
	})
	return r, logs
}

func configuredMail() config.Mail {
	return config.Mail{Host: "smtp.example.com", Port: "587", User: "relay@example.com", Password: "secret"}
}

func post(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestServer(t, configuredMail(), new(mocks.MailerMock))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_RequestIDIsPropagated(t *testing.T) {
	r, _ := newTestServer(t, configuredMail(), new(mocks.MailerMock))

	req := httptest.NewRequest(http.MethodGet, "/api/sections/about", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_ContactSuccess(t *testing.T) {
	m := new(mocks.MailerMock)
	m.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
	r, logs := newTestServer(t, configuredMail(), m)

	w := post(r, "/api/contact", `{"name":"Grace","email":"grace@example.org","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("HTTP Request").Len())
	m.AssertExpectations(t)
}

func TestRouter_ContactBodyTooLarge(t *testing.T) {
	m := new(mocks.MailerMock)
	r, _ := newTestServer(t, configuredMail(), m)

	body := `{"name":"Grace","email":"grace@example.org","message":"` + strings.Repeat("x", 2048) + `"}`
	w := post(r, "/api/contact", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestRouter_ContactUnconfigured(t *testing.T) {
	r, logs := newTestServer(t, config.Mail{}, nil)

	w := post(r, "/api/contact", `{"name":"Grace","email":"grace@example.org","message":"Hi"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Mail service is not configured on the server."}`, w.Body.String())

	entries := logs.FilterMessage("HTTP Request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestServer(t, configuredMail(), new(mocks.MailerMock))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
