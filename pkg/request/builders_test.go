package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		msg      Message
		loc      ParsedLocation
		expected string
	}{
		{
			"payload becomes query string",
			Message{Scheme: SchemeHTTP, Data: []byte("a=1")},
			ParsedLocation{Scheme: "http", Host: "x", Service: "path"},
			"GET /path?a=1 HTTP/1.1\r\nHost: x\r\n\r\n",
		},
		{
			"no payload no query",
			Message{Scheme: SchemeHTTP},
			ParsedLocation{Scheme: "http", Host: "x", Service: "path"},
			"GET /path HTTP/1.1\r\nHost: x\r\n\r\n",
		},
		{
			"port included in host header",
			Message{Scheme: SchemeHTTP},
			ParsedLocation{Scheme: "http", Host: "x", Port: "8080", Service: "svc"},
			"GET /svc HTTP/1.1\r\nHost: x:8080\r\n\r\n",
		},
		{
			"empty service",
			Message{Scheme: SchemeHTTP},
			ParsedLocation{Scheme: "http", Host: "x"},
			"GET / HTTP/1.1\r\nHost: x\r\n\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := GetBuilder{}.Build(&tt.msg, tt.loc)
			require.Len(t, r.Parts(), 1, "get output is a single arena span")
			assert.Equal(t, tt.expected, string(r.Parts()[0]))
		})
	}
}

func TestPostBuilder_Build(t *testing.T) {
	msg := Message{Scheme: SchemePost, Data: []byte("body")}
	loc := ParsedLocation{Scheme: "post", Host: "x", Port: "8080", Service: "path"}

	r := PostBuilder{}.Build(&msg, loc)
	require.Len(t, r.Parts(), 2)
	assert.Equal(t, "POST /path HTTP/1.1\r\nHost: x:8080\r\nContent-Length: 4\r\n\r\n", string(r.Parts()[0]))
	assert.Equal(t, "body", string(r.Parts()[1]))
	assert.Equal(t,
		"POST /path HTTP/1.1\r\nHost: x:8080\r\nContent-Length: 4\r\n\r\nbody",
		r.String(), "concatenation in span order reproduces the full request")
}

func TestPostBuilder_BorrowsPayload(t *testing.T) {
	payload := []byte("abc")
	msg := Message{Scheme: SchemePost, Data: payload}
	r := PostBuilder{}.Build(&msg, ParsedLocation{Host: "h", Service: "s"})

	// the body span aliases the caller's buffer, it is not copied
	payload[0] = 'z'
	assert.Equal(t, "zbc", string(r.Parts()[1]))
}

func TestFullBuilder_Build(t *testing.T) {
	payload := []byte{'G', 'E', 'T', 0x00, 0xff, '\r', '\n', 0x00}
	msg := Message{Scheme: SchemeFull, Data: payload}

	r := FullBuilder{}.Build(&msg, ParsedLocation{})
	require.Len(t, r.Parts(), 1)
	assert.Equal(t, payload, r.Parts()[0], "binary payload passes through byte for byte")
}

func TestBuilderNames(t *testing.T) {
	assert.Equal(t, "http", GetBuilder{}.Name())
	assert.Equal(t, "post", PostBuilder{}.Name())
	assert.Equal(t, "full", FullBuilder{}.Name())
}

func TestBuilderForScheme(t *testing.T) {
	tests := []struct {
		scheme   string
		expected string
	}{
		{SchemeHTTP, "http"},
		{SchemeHTTPS, "http"},
		{SchemeHTTP2, "http"},
		{SchemePost, "post"},
		{SchemePost2, "post"},
		{SchemeFull, "full"},
		{SchemeFull2, "full"},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			b, ok := BuilderForScheme(tt.scheme)
			require.True(t, ok)
			assert.Equal(t, tt.expected, b.Name())
		})
	}

	_, ok := BuilderForScheme("gopher")
	assert.False(t, ok)
}
