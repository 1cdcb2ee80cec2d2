package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		rid, _ := c.Locals(LocalsKey).(string)
		return c.SendString(rid)
	})

	t.Run("GeneratesID", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(HeaderName))
	})

	t.Run("HonorsIncomingID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "upstream-ray")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-ray", resp.Header.Get(HeaderName))
	})
}
