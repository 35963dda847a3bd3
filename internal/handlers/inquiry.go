package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/models"
	"github.com/example/aromique/internal/services"
)

// InquiryHandler accepts customer inquiries about catalog products, persists
// them and forwards them to the admin's messaging channel.
type InquiryHandler struct {
	db       *gorm.DB
	engine   *catalog.Engine
	telegram *services.TelegramService
}

// NewInquiryHandler constructs InquiryHandler.
func NewInquiryHandler(db *gorm.DB, engine *catalog.Engine, telegram *services.TelegramService) *InquiryHandler {
	return &InquiryHandler{db: db, engine: engine, telegram: telegram}
}

type createInquiryRequest struct {
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
}

// CreateInquiry records a new inquiry for a product currently in the bundle.
func (h *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	var req createInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.ProductID == "" || req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	product, ok := h.engine.Repository().Get(req.ProductID)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	inquiry := models.Inquiry{
		ProductID:    product.ID,
		ProductBrand: product.Brand,
		ProductName:  product.Name,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Message:      req.Message,
		Status:       models.InquiryStatusNew,
	}

	if err := h.db.Create(&inquiry).Error; err != nil {
		return err
	}

	// Notification failures must not fail the request; the inquiry is
	// already stored.
	_ = h.telegram.NotifyNewInquiry(services.InquiryNotification{
		ProductBrand: product.Brand,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Message:      req.Message,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": inquiry})
}
