package request

// Scheme tags understood by the transport. The tag on a Message names the
// wire encoding of its payload and selects the builder used to frame it.
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemePost  = "post"
	SchemeFull  = "full"

	// 2-variants carry payloads pre-framed for the http/2 channel. The
	// framing itself is opaque to this layer.
	SchemeHTTP2 = "http2"
	SchemePost2 = "post2"
	SchemeFull2 = "full2"
)

// Message is the logical request unit handed to builders and the
// assembler. The caller owns it; MakeFullRequest rewrites Scheme and Data
// in place on success and leaves both untouched on failure.
type Message struct {
	// Scheme is the tag identifying how Data is encoded.
	Scheme string
	// Addr is the target without the scheme prefix, host[:port]/service.
	Addr string
	// Data is the payload. After a successful MakeFullRequest it holds
	// the complete encoded request bytes.
	Data []byte
}

// isPlainHTTPScheme reports whether the scheme is one of the plain,
// secure or 2-variant HTTP tags, i.e. the set that resolves to GET when
// the request type is unspecified and the content is empty.
func isPlainHTTPScheme(scheme string) bool {
	switch scheme {
	case SchemeHTTP, SchemeHTTPS, SchemeHTTP2:
		return true
	}
	return false
}

// fullSchemeFor maps an input scheme tag to the tag carried by a fully
// encoded message. The 2-variants stay on the http/2 channel; everything
// else lands on "full". Unrecognized schemes return ok=false.
func fullSchemeFor(scheme string) (string, bool) {
	switch scheme {
	case SchemeHTTP, SchemeHTTPS, SchemePost, SchemeFull:
		return SchemeFull, true
	case SchemeHTTP2, SchemePost2, SchemeFull2:
		return SchemeFull2, true
	}
	return "", false
}
