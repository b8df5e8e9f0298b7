package session

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAuthApp(t *testing.T) (*fiber.App, *Manager) {
	t.Helper()
	m := NewManager(newUserService(t), NewMemoryStore())
	h := NewHandler(m, "test-secret")

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, m
}

func TestSignIn(t *testing.T) {
	app, m := makeAuthApp(t)

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"alex@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad credentials, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"alex@example.com","password":"password123"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	body, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body), `"token"`) {
		t.Fatalf("expected a token in the response, got %s", string(body))
	}
	if strings.Contains(string(body), `"password":"$2`) {
		t.Fatalf("password hash leaked: %s", string(body))
	}

	if _, ok := m.Current(); !ok {
		t.Fatalf("sign-in must set the session's current user")
	}
}

func TestSignUp(t *testing.T) {
	app, m := makeAuthApp(t)

	// missing required fields
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"x@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"new@example.com","password":"secret","fullName":"New Person"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res2.StatusCode)
	}

	cur, ok := m.Current()
	if !ok || cur.Email != "new@example.com" {
		t.Fatalf("sign-up must authenticate the new account")
	}

	// duplicate email
	req3 := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"new@example.com","password":"secret","fullName":"Dup"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res3.StatusCode)
	}
}

func TestSignOutOnlyEndsOwnSession(t *testing.T) {
	app, m := makeAuthApp(t)
	u, _ := m.Login("alex@example.com", "password123")

	// a token for a different account must not end someone else's session
	req := httptest.NewRequest("POST", "/api/v1/sign-out", nil)
	req.Header.Set("X-User-ID", strconv.Itoa(u.ID+1))
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if cur, ok := m.Current(); !ok || cur.ID != u.ID {
		t.Fatalf("foreign sign-out ended the active session")
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-out", nil)
	req2.Header.Set("X-User-ID", strconv.Itoa(u.ID))
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("owner sign-out must clear the session")
	}
}

func TestProfileRoutes(t *testing.T) {
	app, m := makeAuthApp(t)
	u, _ := m.Login("alex@example.com", "password123")

	// no token
	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req2.Header.Set("X-User-ID", strconv.Itoa(u.ID))
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}

	req3 := httptest.NewRequest("PUT", "/api/v1/profile", strings.NewReader(`{"phone":"+70000000000"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", strconv.Itoa(u.ID))
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res3.StatusCode)
	}
	body, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(body), "+70000000000") {
		t.Fatalf("expected updated phone in response, got %s", string(body))
	}

	// sign out clears the session
	req4 := httptest.NewRequest("POST", "/api/v1/sign-out", nil)
	req4.Header.Set("X-User-ID", strconv.Itoa(u.ID))
	res4, _ := app.Test(req4)
	if res4.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res4.StatusCode)
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("sign-out must clear the session")
	}
}
