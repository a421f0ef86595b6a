package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
)

// Header is the mutable set of response headers handed to ModifyHeader.
// http.Header satisfies it.
type Header interface {
	Get(key string) string
	Set(key, value string)
	Add(key, value string)
	Del(key string)
}

var _ Header = http.Header{}

type fiberHeader struct {
	h *fasthttp.ResponseHeader
}

// FiberHeader exposes a fasthttp response header as a Header.
func FiberHeader(h *fasthttp.ResponseHeader) Header {
	return fiberHeader{h: h}
}

func (f fiberHeader) Get(key string) string {
	return string(f.h.Peek(key))
}

func (f fiberHeader) Set(key, value string) {
	f.h.Set(key, value)
}

func (f fiberHeader) Add(key, value string) {
	f.h.Add(key, value)
}

func (f fiberHeader) Del(key string) {
	f.h.Del(key)
}
