package httpx

import "maps"

// Header maps a header name to its single value.
//
// Unlike net/http, keys are NOT canonicalized: "content-type" and
// "Content-Type" are different keys, and lookups must use the exact
// spelling the peer sent. Setting a key again replaces its value.
type Header map[string]string

// Get returns the value stored under exactly key.
func (h Header) Get(key string) string {
	return h[key]
}

// Lookup is Get with a presence flag.
func (h Header) Lookup(key string) (string, bool) {
	v, ok := h[key]
	return v, ok
}

func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h[key] = value
}

func (h Header) Del(key string) {
	delete(h, key)
}

// Clone returns a copy of h; a nil Header clones to an empty one.
func (h Header) Clone() Header {
	if h == nil {
		return Header{}
	}
	return maps.Clone(h)
}
