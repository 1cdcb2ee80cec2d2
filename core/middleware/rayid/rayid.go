package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the RayID.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a unique RayID.
// An incoming X-Ray-ID header is honored so upstream proxies can correlate;
// otherwise a fresh UUID is generated. The id is stored in locals for the
// logger and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
