package catalog

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/user"
)

// Handler exposes the catalog over HTTP. Listing and detail are public;
// mutations sit under /api/v1/admin and additionally require the admin role
// (enforced by the service, not here).
type Handler struct {
	service *Service
	users   *user.Service
}

func NewHandler(service *Service, users *user.Service) *Handler {
	return &Handler{service: service, users: users}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/admin/products/:id<[0-9]+>", h.deleteProduct)
}

// getProducts lists the catalog. Filters and sort come in as query params:
// search, categories, brands (comma separated), minPrice, maxPrice, sort.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	q := Query{
		Search:     c.Query("search"),
		Categories: splitCSV(c.Query("categories")),
		Brands:     splitCSV(c.Query("brands")),
		MinPrice:   c.QueryInt("minPrice"),
		MaxPrice:   c.QueryInt("maxPrice"),
		SortBy:     c.Query("sort"),
	}
	return c.JSON(h.service.Search(q))
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	p.ID = 0

	created, err := h.service.Upsert(actor, p)
	if err != nil {
		if err == user.ErrPermissionDenied {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var p Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	p.ID = id

	updated, err := h.service.Upsert(actor, p)
	if err != nil {
		switch err {
		case user.ErrPermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Remove(actor, id); err != nil {
		switch err {
		case user.ErrPermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) actor(c *fiber.Ctx) (user.User, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.User{}, err
	}
	return h.users.GetByID(userID)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
