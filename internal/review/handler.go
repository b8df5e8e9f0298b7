package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/user"
)

// Handler serves per-product reviews. Reading is public; writing requires
// an authenticated user so the review can be attributed.
type Handler struct {
	service *Service
	users   *user.Service
}

func NewHandler(s *Service, users *user.Service) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/product/:id<[0-9]+>/reviews", h.getReviews)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/product/:id<[0-9]+>/reviews", h.addReview)
}

type addReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) getReviews(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}
	return c.JSON(fiber.Map{
		"reviews": h.service.ListForProduct(productID),
		"count":   h.service.CountForProduct(productID),
	})
}

func (h *Handler) addReview(c *fiber.Ctx) error {
	productID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	payload := new(addReviewRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	author, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Add(productID, payload.Rating, payload.Comment, &author)
	if err != nil {
		switch err {
		case ErrValidation:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrAuthenticationRequired:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
