package order

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/user"
)

// Handler delegates order operations to the order service. It needs the
// user service to resolve the acting user for role-gated operations.
type Handler struct {
	service *Service
	users   *user.Service
}

func NewHandler(s *Service, users *user.Service) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.placeOrder)
	app.Get("/api/v1/orders", h.getOrders)
	app.Get("/api/v1/admin/orders", h.getAllOrders)
	app.Patch("/api/v1/admin/orders/:id<[0-9]+>/status", h.updateStatus)
}

type placeOrderRequest struct {
	ShippingAddress user.Address `json:"shippingAddress"`
	PaymentMethod   string       `json:"paymentMethod"`
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(placeOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Place(actor, payload.ShippingAddress, payload.PaymentMethod)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrAuthenticationRequired:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return c.JSON(h.service.ListForUser(userID))
}

func (h *Handler) getAllOrders(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListAll(actor)
	if err != nil {
		if err == user.ErrPermissionDenied {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	actor, err := h.actor(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	updated, err := h.service.UpdateStatus(actor, orderID, payload.Status)
	if err != nil {
		switch err {
		case user.ErrPermissionDenied:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) actor(c *fiber.Ctx) (user.User, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return user.User{}, err
	}
	return h.users.GetByID(userID)
}
