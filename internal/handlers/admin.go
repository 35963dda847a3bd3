package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/middleware"
	"github.com/example/aromique/internal/models"
	"github.com/example/aromique/internal/utils"
)

// AdminHandler exposes the back-office surface: reloading the catalog bundle
// and working through inquiries.
type AdminHandler struct {
	db         *gorm.DB
	engine     *catalog.Engine
	bundlePath string
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB, engine *catalog.Engine, bundlePath string) *AdminHandler {
	return &AdminHandler{db: db, engine: engine, bundlePath: bundlePath}
}

// ReloadCatalog re-reads the bundle from disk and swaps it into the engine.
// The search index is rebuilt as part of the swap.
func (h *AdminHandler) ReloadCatalog(c *fiber.Ctx) error {
	repo, err := catalog.LoadBundle(h.bundlePath)
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	h.engine.Reload(repo)
	log.Printf("catalog reloaded: %d products, %d brands", repo.Len(), len(repo.Brands()))

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"products": repo.Len(),
			"brands":   len(repo.Brands()),
		},
	})
}

// ListInquiries returns inquiries, newest first, optionally by status.
func (h *AdminHandler) ListInquiries(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Inquiry{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var inquiries []models.Inquiry
	if err := query.Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").
		Find(&inquiries).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    inquiries,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

type inquiryStatusRequest struct {
	Status string `json:"status"`
}

// UpdateInquiryStatus moves an inquiry through its workflow and records which
// admin acted on it.
func (h *AdminHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	adminID, ok := middleware.GetCurrentAdminID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req inquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	switch req.Status {
	case models.InquiryStatusNew, models.InquiryStatusContacted, models.InquiryStatusClosed:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown status")
	}

	var inquiry models.Inquiry
	if err := h.db.First(&inquiry, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "inquiry not found")
		}
		return err
	}

	if err := h.db.Model(&inquiry).Updates(map[string]interface{}{
		"status":     req.Status,
		"handled_by": adminID,
	}).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": inquiry})
}
