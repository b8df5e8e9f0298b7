package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"storefront/internal/user"
)

// Handler serves sign-in/sign-up/sign-out and the profile endpoints. On
// successful authentication it mints the JWT the protected routes check.
type Handler struct {
	manager   *Manager
	jwtSecret string
}

func NewHandler(manager *Manager, jwtSecret string) *Handler {
	return &Handler{manager: manager, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.signIn)
	app.Post("/api/v1/sign-up", h.signUp)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-out", h.signOut)
	app.Get("/api/v1/profile", h.getProfile)
	app.Put("/api/v1/profile", h.updateProfile)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	FullName string        `json:"fullName"`
	Phone    string        `json:"phone"`
	Address  *user.Address `json:"address,omitempty"`
}

func (r signUpRequest) isMissingRequiredFields() bool {
	return r.Email == "" || r.Password == "" || r.FullName == ""
}

func (h *Handler) signIn(c *fiber.Ctx) error {
	payload := new(signInRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	u, ok := h.manager.Login(payload.Email, payload.Password)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	signed, err := h.mintToken(u)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Sanitize(u),
		"token":   signed,
	})
}

func (h *Handler) signUp(c *fiber.Ctx) error {
	payload := new(signUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if payload.isMissingRequiredFields() {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	created, err := h.manager.Register(user.User{
		Email:    payload.Email,
		Password: payload.Password,
		FullName: payload.FullName,
		Phone:    payload.Phone,
		Address:  payload.Address,
	})
	if err != nil {
		if err == user.ErrEmailExists {
			return c.Status(fiber.StatusConflict).SendString("Email already exists")
		}
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	signed, err := h.mintToken(created)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":  user.Sanitize(created),
		"token": signed,
	})
}

func (h *Handler) signOut(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	// only the owner of the active session may end it; for anyone else
	// sign-out is a no-op, their token simply expires
	if current, ok := h.manager.Current(); !ok || current.ID != userID {
		return c.JSON(fiber.Map{"message": "Logged out"})
	}

	if err := h.manager.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	u, ok := h.manager.Current()
	if !ok || u.ID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "no active session"})
	}
	return c.JSON(user.Sanitize(u))
}

type profileUpdateRequest struct {
	FullName *string       `json:"fullName,omitempty"`
	Phone    *string       `json:"phone,omitempty"`
	Address  *user.Address `json:"address,omitempty"`
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	current, ok := h.manager.Current()
	if !ok || current.ID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "no active session for this user"})
	}

	payload := new(profileUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.FullName != nil {
		current.FullName = *payload.FullName
	}
	if payload.Phone != nil {
		current.Phone = *payload.Phone
	}
	if payload.Address != nil {
		current.Address = payload.Address
	}

	updated, err := h.manager.UpdateProfile(current)
	if err != nil {
		if err == user.ErrPermissionDenied {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "permission denied"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(user.Sanitize(updated))
}

func (h *Handler) mintToken(u user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
