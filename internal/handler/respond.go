package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-thrifty-inventory/internal/apperr"
)

// parseID parses a numeric path parameter. Non-numeric input is a bad
// identifier; a well-formed id that matches no row answers not-found instead.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// respondError translates a service error into the HTTP contract: BadInput and
// Conflict map to 400, NotFound to 404, everything else to an opaque 500.
// Validation failures carry their structured violation list.
func respondError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindBadInput:
			if len(ae.Violations) > 0 {
				return c.Status(400).JSON(fiber.Map{
					"message": ae.Message,
					"errors":  ae.Violations,
				})
			}
			return c.Status(400).JSON(fiber.Map{"message": ae.Message})
		case apperr.KindConflict:
			return c.Status(400).JSON(fiber.Map{"message": ae.Message})
		case apperr.KindNotFound:
			return c.Status(404).JSON(fiber.Map{"message": ae.Message})
		}
		// Internal: full detail stays server-side
		log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), ae.Err)
		return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
	}

	log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"message": "Internal server error"})
}
