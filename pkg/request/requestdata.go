package request

import (
	"io"
	"net"

	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"

	"github.com/wirehttp/wirehttp/pkg/log"
)

// RequestData is the exact, ready-to-transmit byte layout of a request.
// It owns a private arena sized to a precomputed upper bound and an
// ordered list of spans. A span either points into the arena, in which
// case it lives as long as the RequestData, or borrows the message
// payload it was built from. Borrowed spans keep the payload slice
// reachable, so the backing buffer cannot be collected mid-send, but the
// caller must not modify it until transmission completes.
//
// Span order is wire order: concatenating all spans yields exactly the
// bytes to put on the socket. A RequestData is immutable once built and
// safe to read from multiple goroutines.
type RequestData struct {
	bound int
	mem   []byte
	parts [][]byte
}

// NewRequestData returns a RequestData with an arena capped at memSize
// bytes. Builders compute memSize as an upper bound before formatting;
// overrunning it is a fatal invariant violation, not a resize.
func NewRequestData(memSize int) *RequestData {
	return &RequestData{
		bound: memSize,
		mem:   make([]byte, 0, memSize),
	}
}

// sealArena attaches the formatted arena as the next span. Builders call
// this exactly once, after all arena formatting and before any borrowed
// parts. An arena that outgrew its bound would have silently corrupted
// span offsets, so that is treated as fatal.
func (r *RequestData) sealArena() {
	if len(r.mem) > r.bound {
		log.Panic().
			Int("bound", r.bound).
			Int("len", len(r.mem)).
			Msg("request arena exceeded its precomputed bound")
	}
	r.parts = append(r.parts, r.mem)
}

// AddPart appends a borrowed span. The caller keeps buf alive and
// unmodified until the send completes.
func (r *RequestData) AddPart(buf []byte) {
	r.parts = append(r.parts, buf)
}

// Parts returns the spans in wire order. The returned slice must not be
// mutated.
func (r *RequestData) Parts() [][]byte {
	return r.parts
}

// Len returns the total number of bytes across all spans.
func (r *RequestData) Len() int {
	n := 0
	for _, p := range r.parts {
		n += len(p)
	}
	return n
}

// SendTo writes every span to w in order as one logical vectored write.
// On conn-like writers net.Buffers uses writev under the hood. The
// ordering guarantee is span order with no interleaving from this call;
// callers serialising multiple writers on one sink do that themselves.
func (r *RequestData) SendTo(w io.Writer) (int64, error) {
	bufs := make(net.Buffers, len(r.parts))
	copy(bufs, r.parts)
	return bufs.WriteTo(w)
}

// Bytes returns the concatenation of all spans as a fresh slice.
func (r *RequestData) Bytes() []byte {
	out := make([]byte, 0, r.Len())
	for _, p := range r.parts {
		out = append(out, p...)
	}
	return out
}

// String returns the concatenated spans. Useful for logging and tests,
// not for the hotpath.
func (r *RequestData) String() string {
	w := bytebufferpool.Get()
	for _, p := range r.parts {
		w.B = append(w.B, p...)
	}
	ret := w.String()
	bytebufferpool.Put(w)
	return ret
}

func (r *RequestData) MarshalZerologObject(e *zerolog.Event) {
	e.Int("parts", len(r.parts)).
		Int("size", r.Len())
}
