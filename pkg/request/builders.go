package request

import "strconv"

// Builder frames a message into its exact wire bytes. Builders are pure:
// no shared state, safe to call from any goroutine. The Name tag is the
// stable lowercase identifier an external scheme dispatcher selects by.
type Builder interface {
	Name() string
	Build(msg *Message, loc ParsedLocation) *RequestData
}

// GetBuilder encodes a GET request. The payload, when present, is copied
// into the header text as the query string; the output is a single
// arena-owned span.
type GetBuilder struct{}

func (GetBuilder) Name() string { return SchemeHTTP }

func (GetBuilder) Build(msg *Message, loc ParsedLocation) *RequestData {
	r := NewRequestData(50 + len(loc.Service) + len(msg.Data) + len(loc.Host))

	r.mem = append(r.mem, "GET /"...)
	r.mem = append(r.mem, loc.Service...)
	if len(msg.Data) > 0 {
		r.mem = append(r.mem, '?')
		r.mem = append(r.mem, msg.Data...)
	}
	r.mem = append(r.mem, " HTTP/1.1\r\nHost: "...)
	r.mem = loc.HostWithPort(r.mem)
	r.mem = append(r.mem, "\r\n\r\n"...)

	r.sealArena()
	return r
}

// PostBuilder encodes a POST request as two spans: an arena-owned header
// block and a borrowed span over the message payload. The payload buffer
// must stay alive and unmodified until the send completes.
type PostBuilder struct{}

func (PostBuilder) Name() string { return SchemePost }

func (PostBuilder) Build(msg *Message, loc ParsedLocation) *RequestData {
	r := NewRequestData(100 + len(loc.Service) + len(loc.Host))

	r.mem = append(r.mem, "POST /"...)
	r.mem = append(r.mem, loc.Service...)
	r.mem = append(r.mem, " HTTP/1.1\r\nHost: "...)
	r.mem = loc.HostWithPort(r.mem)
	r.mem = append(r.mem, "\r\nContent-Length: "...)
	r.mem = strconv.AppendInt(r.mem, int64(len(msg.Data)), 10)
	r.mem = append(r.mem, "\r\n\r\n"...)

	r.sealArena()
	r.AddPart(msg.Data)
	return r
}

// FullBuilder passes a pre-encoded payload through verbatim as a single
// borrowed span.
type FullBuilder struct{}

func (FullBuilder) Name() string { return SchemeFull }

func (FullBuilder) Build(msg *Message, _ ParsedLocation) *RequestData {
	r := NewRequestData(0)
	r.AddPart(msg.Data)
	return r
}
