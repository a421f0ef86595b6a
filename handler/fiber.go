package handler

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// HandleBasic mounts a RequestHandler on a fiber route.
func HandleBasic[T Request, R Response](h RequestHandler[T, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := Bind[T](c)
		if err != nil {
			return respondWithError(c, err)
		}
		res, err := Serve(c.UserContext(), h, req, FiberHeader(&c.Response().Header))
		if err != nil {
			return respondWithError(c, err)
		}
		return render(c, res)
	}
}

// HandleFiber mounts a FiberHandler on a fiber route.
func HandleFiber[T Request, R Response](h FiberHandler[T, R]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := Bind[T](c)
		if err != nil {
			return respondWithError(c, err)
		}
		res, err := ServeFiber(c, c.UserContext(), h, req, FiberHeader(&c.Response().Header))
		if err != nil {
			return respondWithError(c, err)
		}
		return render(c, res)
	}
}

// Bind fills a new T from the route params, the query string, the request
// headers and, when present, the body. Each of the first three sources is
// only read when T tags at least one field for it, so an untagged field is
// never filled from a query key or header that happens to share its name.
// Non-struct types are read from the body only.
func Bind[T Request](c *fiber.Ctx) (*T, error) {
	req := new(T)
	src := sourcesOf(reflect.TypeOf(req).Elem())
	if src.params {
		if err := c.ParamsParser(req); err != nil {
			return nil, fmt.Errorf("%w: params: %v", ErrBind, err)
		}
	}
	if src.query {
		if err := c.QueryParser(req); err != nil {
			return nil, fmt.Errorf("%w: query: %v", ErrBind, err)
		}
	}
	if src.headers {
		if err := c.ReqHeaderParser(req); err != nil {
			return nil, fmt.Errorf("%w: headers: %v", ErrBind, err)
		}
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return nil, fmt.Errorf("%w: body: %v", ErrBind, err)
		}
	}
	if err := validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

type bindSources struct {
	params  bool
	query   bool
	headers bool
}

var bindSourceCache sync.Map // reflect.Type -> bindSources

func sourcesOf(t reflect.Type) bindSources {
	if cached, ok := bindSourceCache.Load(t); ok {
		return cached.(bindSources)
	}
	var src bindSources
	collectSources(t, &src)
	bindSourceCache.Store(t, src)
	return src
}

func collectSources(t reflect.Type, src *bindSources) {
	if t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			collectSources(ft, src)
		}
		if _, ok := f.Tag.Lookup("params"); ok {
			src.params = true
		}
		if _, ok := f.Tag.Lookup("query"); ok {
			src.query = true
		}
		if _, ok := f.Tag.Lookup("reqHeader"); ok {
			src.headers = true
		}
	}
}

func validate(req any) error {
	v, ok := req.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

func render[R Response](c *fiber.Ctx, res *R) error {
	if res == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	status := fiber.StatusOK
	if sc, ok := any(res).(StatusCoder); ok {
		status = sc.Status()
	}
	return c.Status(status).JSON(res)
}
