package request

// builders maps scheme tags to the builder that frames payloads carried
// under that tag. The secure and 2-variant tags share wire encodings with
// their plain counterparts; transport differences live below this layer.
var builders = map[string]Builder{
	SchemeHTTP:  GetBuilder{},
	SchemeHTTPS: GetBuilder{},
	SchemeHTTP2: GetBuilder{},
	SchemePost:  PostBuilder{},
	SchemePost2: PostBuilder{},
	SchemeFull:  FullBuilder{},
	SchemeFull2: FullBuilder{},
}

// BuilderForScheme returns the builder registered for the scheme tag.
func BuilderForScheme(scheme string) (Builder, bool) {
	b, ok := builders[scheme]
	return b, ok
}
