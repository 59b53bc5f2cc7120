package handler

import (
	"go-thrifty-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BranchHandler struct {
	branchService service.BranchService
}

func NewBranchHandler(branchService service.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// GetBranches returns all branches with their products
// GET /Branches
func (h *BranchHandler) GetBranches(c *fiber.Ctx) error {
	branches, err := h.branchService.GetAllBranches()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branches)
}

// GetBranch returns a single branch by ID
// GET /Branches/:id
func (h *BranchHandler) GetBranch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid branch ID"})
	}

	branch, err := h.branchService.GetBranchByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(branch)
}

// CreateBranch creates a new branch
// POST /Branches
func (h *BranchHandler) CreateBranch(c *fiber.Ctx) error {
	var req service.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	branch, err := h.branchService.CreateBranch(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Branch created successfully",
		"branch":  branch,
	})
}

// UpdateBranch applies a partial update to a branch
// PUT /Branches/:id
func (h *BranchHandler) UpdateBranch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid branch ID"})
	}

	var req service.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	branch, err := h.branchService.UpdateBranch(id, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Branch updated successfully",
		"branch":  branch,
	})
}

// DeleteBranch deletes a branch without products
// DELETE /Branches/:id
func (h *BranchHandler) DeleteBranch(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid branch ID"})
	}

	if err := h.branchService.DeleteBranch(id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Branch deleted successfully"})
}
