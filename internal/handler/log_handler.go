package handler

import (
	"go-thrifty-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

// LogHandler exposes no update or delete routes: logs are append-only.
type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// GetLogs returns all logs with their product and user
// GET /Logs
func (h *LogHandler) GetLogs(c *fiber.Ctx) error {
	logs, err := h.logService.GetAllLogs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// GetLog returns a single log by ID
// GET /Logs/:id
func (h *LogHandler) GetLog(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid log ID"})
	}

	log, err := h.logService.GetLogByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(log)
}

// GetLogsByProduct returns the audit trail of one product
// GET /Logs/Product/:productId
func (h *LogHandler) GetLogsByProduct(c *fiber.Ctx) error {
	productID, err := parseID(c, "productId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid product ID"})
	}

	logs, err := h.logService.GetLogsByProduct(productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}

// CreateLog appends an audit record for a quantity change
// POST /Logs
func (h *LogHandler) CreateLog(c *fiber.Ctx) error {
	var req service.CreateLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	log, err := h.logService.CreateLog(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Log created successfully",
		"log":     log,
	})
}
