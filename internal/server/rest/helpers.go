package rest

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// fiberParam returns a route parameter with percent-encoding undone, so
// /api/users/search/web%20design searches for "web design".
func fiberParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
