package request

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// ParsedLocation is a decomposed target URL. It is read-only once
// produced; builders and the assembler only format from it.
type ParsedLocation struct {
	Scheme string
	Host   string // bare host, no port
	Port   string // empty means the scheme default
	// Service is everything after host[:port]/, query string included.
	Service string
}

func (l ParsedLocation) MarshalZerologObject(e *zerolog.Event) {
	e.Str("scheme", l.Scheme).
		Str("host", l.Host).
		Str("port", l.Port).
		Str("service", l.Service)
}

// ParseLocation splits scheme://host[:port]/service into its parts. The
// scheme may be any transport tag, not just http/https. Port splitting
// follows the last colon in the authority, so bare IPv6 hosts must be
// bracketed by the caller.
func ParseLocation(rawurl string) (ParsedLocation, error) {
	var loc ParsedLocation

	var u fasthttp.URI
	if err := u.Parse(nil, []byte(rawurl)); err != nil {
		return loc, errors.Wrap(err, "failed to parse url")
	}

	hostport := string(u.Host())
	if hostport == "" {
		return loc, errors.Errorf("missing host in %q", rawurl)
	}

	loc.Scheme = string(u.Scheme())
	loc.Host = hostport
	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		loc.Host, loc.Port = hostport[:i], hostport[i+1:]
	}

	loc.Service = strings.TrimPrefix(string(u.PathOriginal()), "/")
	if qs := u.QueryString(); len(qs) > 0 {
		loc.Service += "?" + string(qs)
	}

	return loc, nil
}

// HostWithPort appends host[:port] to dst.
func (l ParsedLocation) HostWithPort(dst []byte) []byte {
	dst = append(dst, l.Host...)
	if l.Port != "" {
		dst = append(dst, ':')
		dst = append(dst, l.Port...)
	}
	return dst
}
