package request

import (
	"fmt"
	"strconv"
	"strings"

	errors2 "github.com/wirehttp/wirehttp/pkg/errors"
	"github.com/wirehttp/wirehttp/pkg/log"
)

// RequestType selects the HTTP method for an assembled request.
type RequestType int

const (
	// RequestTypeAny lets the assembler resolve the method: GET when the
	// content is empty and the scheme is a plain/secure/2-variant http
	// tag, POST otherwise.
	RequestTypeAny RequestType = iota
	RequestTypePost
	RequestTypeGet
	RequestTypePut
	RequestTypeDelete
)

var (
	methodGet    = []byte("GET")
	methodPost   = []byte("POST")
	methodPut    = []byte("PUT")
	methodDelete = []byte("DELETE")

	ErrUnsupportedMethod = fmt.Errorf("unsupported method")
)

// RequestTypeFromString maps a method name to its RequestType. The empty
// string and "any" resolve to RequestTypeAny.
func RequestTypeFromString(m string) (RequestType, error) {
	switch strings.ToUpper(m) {
	case "", "ANY":
		return RequestTypeAny, nil
	case "GET":
		return RequestTypeGet, nil
	case "POST":
		return RequestTypePost, nil
	case "PUT":
		return RequestTypePut, nil
	case "DELETE":
		return RequestTypeDelete, nil
	}
	return RequestTypeAny, ErrUnsupportedMethod
}

func (t RequestType) String() string {
	switch t {
	case RequestTypePost:
		return "POST"
	case RequestTypeGet:
		return "GET"
	case RequestTypePut:
		return "PUT"
	case RequestTypeDelete:
		return "DELETE"
	}
	return "ANY"
}

// method resolves the wire method. Explicit types are honored verbatim;
// a GET is never downgraded to POST because content is present.
func (t RequestType) method(scheme string, contentEmpty bool) []byte {
	switch t {
	case RequestTypePost:
		return methodPost
	case RequestTypeGet:
		return methodGet
	case RequestTypePut:
		return methodPut
	case RequestTypeDelete:
		return methodDelete
	}
	if contentEmpty && isPlainHTTPScheme(scheme) {
		return methodGet
	}
	return methodPost
}

// RequestFlags is an open-ended set of boolean request options. New flags
// extend the set without breaking existing callers.
type RequestFlags uint32

const (
	// AbsoluteURI puts the full scheme://host[:port]/path form on the
	// request line, as proxies expect (RFC 2616 section 5.1.2).
	AbsoluteURI RequestFlags = 1 << iota
)

func (f RequestFlags) Has(flag RequestFlags) bool {
	return f&flag != 0
}

// DefaultContentType is applied whenever a caller passes an empty content
// type to the assembler.
const DefaultContentType = "application/x-www-form-urlencoded"

// MakeFullRequest encodes msg in place into a complete HTTP/1.1 request.
// msg.Addr supplies the target and msg.Data supplies the content bytes.
// headers are verbatim extra header lines, each already CRLF terminated;
// that is a caller precondition, not validated here.
//
// On success msg.Scheme becomes "full" (or "full2" for the 2-variants)
// and msg.Data holds the complete byte stream. On failure msg is left
// exactly as it was.
func MakeFullRequest(msg *Message, headers []byte, contentType string, typ RequestType, flags RequestFlags) error {
	return makeFullRequest(msg, nil, msg.Data, headers, contentType, typ, flags)
}

// MakeFullRequestParts is MakeFullRequest with the target query built
// from urlParts ('?' + part1&part2&... appended to the path parsed from
// msg.Addr). msg.Data is ignored as input; only content is used.
func MakeFullRequestParts(msg *Message, urlParts []string, content, headers []byte, contentType string, typ RequestType, flags RequestFlags) error {
	return makeFullRequest(msg, urlParts, content, headers, contentType, typ, flags)
}

func makeFullRequest(msg *Message, urlParts []string, content, headers []byte, contentType string, typ RequestType, flags RequestFlags) error {
	loc, err := ParseLocation(msg.Scheme + "://" + msg.Addr)
	if err != nil {
		return &errors2.BuildError{Scheme: msg.Scheme, Addr: msg.Addr, Context: "failed to parse target", Err: err}
	}

	fullScheme, ok := fullSchemeFor(loc.Scheme)
	if !ok {
		return &errors2.BuildError{Scheme: msg.Scheme, Addr: msg.Addr, Context: "unrecognized scheme"}
	}

	if contentType == "" {
		contentType = DefaultContentType
	}
	method := typ.method(loc.Scheme, len(content) == 0)

	// upper bound on the formatted request. Content-Length is at most 20
	// digits, the absolute uri prefix and host:port appear at most once
	// each on the request line and Host header.
	bound := len(method) + 1 +
		len(loc.Scheme) + 3 + len(loc.Host) + 1 + len(loc.Port) +
		1 + len(loc.Service) + 1 + URLPartsLength(urlParts) +
		len(" HTTP/1.1\r\n") +
		len("Host: ") + len(loc.Host) + 1 + len(loc.Port) + len("\r\n") +
		len(headers) +
		len("Content-Type: ") + len(contentType) + len("\r\n") +
		len("Content-Length: ") + 20 + len("\r\n") +
		len("\r\n") + len(content)

	buf := make([]byte, 0, bound)
	buf = append(buf, method...)
	buf = append(buf, ' ')
	if flags.Has(AbsoluteURI) {
		buf = append(buf, loc.Scheme...)
		buf = append(buf, "://"...)
		buf = loc.HostWithPort(buf)
	}
	buf = append(buf, '/')
	buf = append(buf, loc.Service...)
	if len(urlParts) > 0 {
		buf = WriteURLParts(buf, urlParts)
	}
	buf = append(buf, " HTTP/1.1\r\nHost: "...)
	buf = loc.HostWithPort(buf)
	buf = append(buf, "\r\n"...)
	buf = append(buf, headers...)
	buf = append(buf, "Content-Type: "...)
	buf = append(buf, contentType...)
	buf = append(buf, "\r\nContent-Length: "...)
	buf = strconv.AppendInt(buf, int64(len(content)), 10)
	buf = append(buf, "\r\n\r\n"...)
	buf = append(buf, content...)

	if len(buf) > bound {
		log.Panic().
			Int("bound", bound).
			Int("len", len(buf)).
			Msg("assembled request exceeded its precomputed bound")
	}

	log.Trace().
		Object("location", loc).
		Bytes("method", method).
		Int("size", len(buf)).
		Msg("assembled full request")

	msg.Scheme = fullScheme
	msg.Data = buf
	return nil
}
