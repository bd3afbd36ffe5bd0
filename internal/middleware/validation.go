package middleware

import (
	"strconv"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsPage = "validated_page"
	LocalsID   = "validated_id"
)

// ValidatePageParam parses the page query parameter (default 1) and stores it
// in Locals under LocalsPage.
func ValidatePageParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := domain.ParsePage(c.Query("page"))
		if err != nil {
			return err
		}
		c.Locals(LocalsPage, page)
		return c.Next()
	}
}

// ValidateIDParam parses a positive integer path parameter and stores it in
// Locals under LocalsID. Anything else is treated as an unknown route.
func ValidateIDParam(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params(name), 10, 64)
		if err != nil || id < 1 {
			return domain.NewNotFoundError("invalid resource id").WithContext(name, c.Params(name))
		}
		c.Locals(LocalsID, id)
		return c.Next()
	}
}

// PageFromLocals returns the page stored by ValidatePageParam, or 1.
func PageFromLocals(c *fiber.Ctx) int {
	if page, ok := c.Locals(LocalsPage).(int); ok {
		return page
	}
	return 1
}

// IDFromLocals returns the id stored by ValidateIDParam.
func IDFromLocals(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalsID).(int64)
	return id, ok
}
