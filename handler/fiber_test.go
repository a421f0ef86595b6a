package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	ID    string `params:"id" json:"-"`
	Limit int    `query:"limit" json:"-"`
	Note  string `json:"note"`
}

func (r *itemRequest) Validate() error {
	if r.ID == "invalid" {
		return errors.New("id is invalid")
	}
	return nil
}

type itemResponse struct {
	ID    string `json:"id"`
	Limit int    `json:"limit"`
	Note  string `json:"note"`
}

type createdResponse struct {
	ID string `json:"id"`
}

func (createdResponse) Status() int { return http.StatusCreated }

type itemHandler struct {
	modifyCalls int
}

func (h *itemHandler) ServeRequest(_ context.Context, req *itemRequest) (*itemResponse, error) {
	switch req.ID {
	case "missing":
		return nil, NewHandlerError(http.StatusNotFound, "item not found")
	case "crash":
		return nil, errors.New("database exploded")
	case "empty":
		return nil, nil
	}
	return &itemResponse{ID: req.ID, Limit: req.Limit, Note: req.Note}, nil
}

func (h *itemHandler) ModifyHeader(headers Header, data *itemResponse) {
	h.modifyCalls++
	if data == nil {
		return
	}
	headers.Set("X-Item-Id", data.ID)
	headers.Add("X-Trace", "a")
	headers.Add("X-Trace", "b")
}

type ipHandler struct{}

func (ipHandler) ServeRequest(c *fiber.Ctx, _ context.Context, req *greetRequest) (*createdResponse, error) {
	return &createdResponse{ID: req.Name + "@" + c.Get("User-Agent")}, nil
}

func (ipHandler) ModifyHeader(headers Header, data *createdResponse) {
	headers.Set("Location", "/things/"+data.ID)
}

func newTestApp(h *itemHandler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/items/:id", HandleBasic[itemRequest, itemResponse](h))
	app.Get("/items/:id", HandleBasic[itemRequest, itemResponse](h))
	app.Post("/things", HandleFiber[greetRequest, createdResponse](ipHandler{}))
	return app
}

func decodeBody(t *testing.T, body io.Reader, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(out))
}

func TestHandleBasic(t *testing.T) {
	t.Run("binds params query and body then applies headers", func(t *testing.T) {
		h := &itemHandler{}
		app := newTestApp(h)

		req := httptest.NewRequest(http.MethodPost, "/items/42?limit=7", strings.NewReader(`{"note":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "42", resp.Header.Get("X-Item-Id"))
		assert.Equal(t, []string{"a", "b"}, resp.Header.Values("X-Trace"))
		assert.Equal(t, 1, h.modifyCalls)

		var body itemResponse
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, itemResponse{ID: "42", Limit: 7, Note: "hello"}, body)
	})

	t.Run("maps handler errors to status and skips headers", func(t *testing.T) {
		h := &itemHandler{}
		app := newTestApp(h)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/missing", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("X-Item-Id"))
		assert.Equal(t, 0, h.modifyCalls)

		var body map[string]string
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "item not found", body["error"])
	})

	t.Run("hides internal errors", func(t *testing.T) {
		app := newTestApp(&itemHandler{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/crash", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "Internal Server Error", body["error"])
	})

	t.Run("nil response is 204", func(t *testing.T) {
		h := &itemHandler{}
		app := newTestApp(h)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/empty", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, 1, h.modifyCalls)
	})

	t.Run("malformed body is a bind error", func(t *testing.T) {
		app := newTestApp(&itemHandler{})

		req := httptest.NewRequest(http.MethodPost, "/items/1", strings.NewReader(`{"note":`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation failure is 422", func(t *testing.T) {
		h := &itemHandler{}
		app := newTestApp(h)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/invalid", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var body map[string]string
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "request validation failed: id is invalid", body["error"])
	})
}

type tracedRequest struct {
	ID    string `params:"id"`
	Trace string `reqHeader:"X-Trace-Id"`
	Note  string `json:"note"`
}

type echoTraced struct{}

func (echoTraced) ServeRequest(_ context.Context, req *tracedRequest) (*tracedRequest, error) {
	return req, nil
}

func TestBindSources(t *testing.T) {
	t.Run("untagged sources never overwrite params", func(t *testing.T) {
		app := fiber.New()
		app.Get("/hello/:name", HandleBasic[namedRequest, namedRequest](HandlerFunc[namedRequest, namedRequest](
			func(_ context.Context, req *namedRequest) (*namedRequest, error) { return req, nil },
		)))

		req := httptest.NewRequest(http.MethodGet, "/hello/gopher?name=mallory", nil)
		req.Header.Set("Name", "eve")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body namedRequest
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, "gopher", body.Name)
	})

	t.Run("tagged headers bind and the query is skipped", func(t *testing.T) {
		app := fiber.New()
		app.Get("/items/:id", HandleBasic[tracedRequest, tracedRequest](echoTraced{}))

		req := httptest.NewRequest(http.MethodGet, "/items/9?note=query-note", nil)
		req.Header.Set("X-Trace-Id", "t-1")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var body tracedRequest
		decodeBody(t, resp.Body, &body)
		assert.Equal(t, tracedRequest{ID: "9", Trace: "t-1"}, body)
	})

	t.Run("sources are detected per type", func(t *testing.T) {
		assert.Equal(t, bindSources{params: true, query: true}, sourcesOf(reflect.TypeOf(itemRequest{})))
		assert.Equal(t, bindSources{params: true, headers: true}, sourcesOf(reflect.TypeOf(tracedRequest{})))
		assert.Equal(t, bindSources{}, sourcesOf(reflect.TypeOf(greetRequest{})))
		assert.Equal(t, bindSources{}, sourcesOf(reflect.TypeOf("")))
	})
}

type namedRequest struct {
	Name string `params:"name" json:"name"`
}

func TestHandleFiber(t *testing.T) {
	app := newTestApp(&itemHandler{})

	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{"name":"box"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "curl")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/things/box@curl", resp.Header.Get("Location"))

	var body createdResponse
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, "box@curl", body.ID)
}

func TestFiberHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		h := FiberHeader(&c.Response().Header)
		h.Set("X-One", "1")
		h.Set("X-Gone", "x")
		h.Del("X-Gone")
		return c.SendString(h.Get("X-One"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "1", string(b))
	assert.Equal(t, "1", resp.Header.Get("X-One"))
	assert.Empty(t, resp.Header.Get("X-Gone"))
}
