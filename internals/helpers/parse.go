// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam ambil path param dan parse jadi UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// ParseUUIDQuery parse query param opsional; (Nil, nil) kalau kosong.
func ParseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s bukan UUID valid", name)
	}
	return id, nil
}

// ParseDateQuery parse query "YYYY-MM-DD" opsional; (nil, nil) kalau kosong.
func ParseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("%s harus format YYYY-MM-DD", name)
	}
	return &t, nil
}
