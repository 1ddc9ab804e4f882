package adminrpc

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/protobuf/proto"
)

func newTestRouterConfig(t *testing.T, h *Handler) ServerConfig {
	t.Helper()
	return ServerConfig{
		Handler:    h,
		Username:   "admin",
		Password:   "hunter2",
		SessionKey: []byte("0123456789abcdef0123456789abcdef"),
	}
}

func login(t *testing.T, router http.Handler) *http.Cookie {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			return c
		}
	}
	t.Fatalf("login did not set a session cookie")
	return nil
}

func TestLoginRequiredForAPI(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))

	req := httptest.NewRequest(http.MethodPost, "/gettimelinesqueakdisplays", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect to login without a session, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
}

func TestAPIRoundTripAfterLogin(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))
	cookie := login(t, router)

	body, err := proto.Marshal(&Empty{})
	if err != nil {
		t.Fatalf("marshal Empty: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/gettimelinesqueakdisplays", bytes.NewReader(body))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp SqueakDisplaysResponse
	if err := proto.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
}

func TestAPIUnknownEndpointReturns404(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))
	cookie := login(t, router)

	req := httptest.NewRequest(http.MethodPost, "/notreal", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a path with no registered endpoint, got %d", rec.Code)
	}
}

func TestLoginDisabledSkipsSessionCheck(t *testing.T) {
	h := newTestHandler(t)
	cfg := newTestRouterConfig(t, h)
	cfg.LoginDisabled = true
	router := NewRouter(cfg)

	body, _ := proto.Marshal(&Empty{})
	req := httptest.NewRequest(http.MethodPost, "/gettimelinesqueakdisplays", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with login disabled, got %d", rec.Code)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))
	cookie := login(t, router)

	logoutReq := httptest.NewRequest(http.MethodGet, "/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRec := httptest.NewRecorder()
	router.ServeHTTP(logoutRec, logoutReq)
	if logoutRec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", logoutRec.Code)
	}

	var clearedCookie *http.Cookie
	for _, c := range logoutRec.Result().Cookies() {
		if c.Name == sessionName {
			clearedCookie = c
		}
	}
	if clearedCookie == nil {
		t.Fatalf("expected logout to issue a cookie clearing instruction")
	}

	req := httptest.NewRequest(http.MethodPost, "/gettimelinesqueakdisplays", nil)
	req.AddCookie(clearedCookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect to login after logout, got %d", rec.Code)
	}
}

func TestLoginCookieIsHttpOnlyAndSessionScopedByDefault(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))

	form := url.Values{"username": {"admin"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("login did not set a session cookie")
	}
	if !cookie.HttpOnly {
		t.Fatalf("expected session cookie to be HttpOnly")
	}
	if cookie.MaxAge != 0 {
		t.Fatalf("expected a browser-session-scoped cookie (MaxAge 0) without remember_me, got %d", cookie.MaxAge)
	}
}

func TestLoginRememberMePersistsCookie(t *testing.T) {
	h := newTestHandler(t)
	router := NewRouter(newTestRouterConfig(t, h))

	form := url.Values{"username": {"admin"}, "password": {"hunter2"}, "remember_me": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("login did not set a session cookie")
	}
	if cookie.MaxAge != rememberedSessionMaxAgeSecs {
		t.Fatalf("expected a %d-second cookie with remember_me=true, got %d", rememberedSessionMaxAgeSecs, cookie.MaxAge)
	}
}

func TestRouterMarksSessionCookieSecureWhenTLSConfigured(t *testing.T) {
	h := newTestHandler(t)
	cfg := newTestRouterConfig(t, h)
	cfg.TLSCert = "/tmp/does-not-need-to-exist.cert"
	router := NewRouter(cfg)

	form := url.Values{"username": {"admin"}, "password": {"hunter2"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("login did not set a session cookie")
	}
	if !cookie.Secure {
		t.Fatalf("expected Secure session cookie when ServerConfig.TLSCert is set")
	}
}
