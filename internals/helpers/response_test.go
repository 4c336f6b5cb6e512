package helper

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	app.Get("/p", func(c *fiber.Ctx) error {
		p := ResolvePaging(c, 20, 100)
		return c.JSON(fiber.Map{"page": p.Page, "per_page": p.PerPage, "offset": p.Offset})
	})

	_, body := getJSON(t, app, "/p?page=3&per_page=10")
	assert.EqualValues(t, 3, body["page"])
	assert.EqualValues(t, 10, body["per_page"])
	assert.EqualValues(t, 20, body["offset"])

	// alias limit
	_, body = getJSON(t, app, "/p?page=2&limit=5")
	assert.EqualValues(t, 5, body["per_page"])
	assert.EqualValues(t, 5, body["offset"])

	// nilai rusak / di luar batas dinormalisasi
	_, body = getJSON(t, app, "/p?page=-1&per_page=9999")
	assert.EqualValues(t, 1, body["page"])
	assert.EqualValues(t, 100, body["per_page"])
}

func TestHasPagingParams(t *testing.T) {
	app := fiber.New()
	app.Get("/p", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"has": HasPagingParams(c)})
	})

	_, body := getJSON(t, app, "/p")
	assert.Equal(t, false, body["has"])
	_, body = getJSON(t, app, "/p?page=1")
	assert.Equal(t, true, body["has"])
	_, body = getJSON(t, app, "/p?limit=5")
	assert.Equal(t, true, body["has"])
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestJsonErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/e", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "Visitor not found")
	})
	app.Get("/v", func(c *fiber.Ctx) error {
		return JsonValidationError(c, map[string][]string{"name": {"required"}})
	})

	status, body := getJSON(t, app, "/e")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Visitor not found", body["message"])
	assert.Equal(t, "NOT_FOUND", body["error_code"])

	status, body = getJSON(t, app, "/v")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	require.Contains(t, body, "errors")
}

func TestJsonSuccessHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error { return JsonOK(c, "", fiber.Map{"a": 1}) })
	app.Get("/list", func(c *fiber.Ctx) error {
		p := BuildPaginationFromPage(1, 1, 20)
		p.Count = 1
		return JsonList(c, "OK", []int{1}, &p)
	})

	status, body := getJSON(t, app, "/ok")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ok", body["message"]) // pesan kosong diisi default

	_, body = getJSON(t, app, "/list")
	require.Contains(t, body, "pagination")
	pg := body["pagination"].(map[string]any)
	assert.EqualValues(t, 1, pg["count"])
}
