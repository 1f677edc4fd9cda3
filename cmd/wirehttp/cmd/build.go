package cmd

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	errors2 "github.com/wirehttp/wirehttp/pkg/errors"
	"github.com/wirehttp/wirehttp/pkg/request"
)

var (
	method      = ""
	headers     = []string{}
	content     = ""
	contentType = ""
	absoluteURI = false
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build URL [URL...]",
	Short: "assemble the full request bytes for one or more target urls",
	Long: `build resolves the method, formats the headers and content and emits
the exact wire bytes to stdout, one request after another.

The url scheme is the transport tag, e.g. http://, post:// or http2://.
With no explicit method, empty content on an http scheme yields a GET and
everything else a POST.

usage:
wirehttp build http://host:8080/svc
wirehttp build post://host/svc -d 'a=b' -H 'X-Trace-Id: abc'
wirehttp build http://proxyhost/svc --absolute-uri
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var merr *multierror.Error
		for _, raw := range args {
			rd, err := assemble(raw)
			if err != nil {
				merr = multierror.Append(merr, err)
				continue
			}
			if _, err := rd.SendTo(os.Stdout); err != nil {
				merr = multierror.Append(merr, err)
			}
		}
		if err := merr.ErrorOrNil(); err != nil {
			errors2.PrintError(err, 0)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addRequestFlags(buildCmd)
}

// addRequestFlags attaches the shared request shaping flags to a command
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&method, "method", "X", "", "request method. one of get,post,put,delete. empty lets the assembler resolve it")
	cmd.Flags().StringSliceVarP(&headers, "header", "H", nil, "extra header line 'Key: value'. can be specified multiple times")
	cmd.Flags().StringVarP(&content, "data", "d", "", "request content")
	cmd.Flags().StringVarP(&contentType, "content-type", "t", "", "content type. empty applies the default")
	cmd.Flags().BoolVar(&absoluteURI, "absolute-uri", false, "use the absolute uri form on the request line (proxy style)")
}

// assemble runs the full pipeline for a single url: message from the url,
// MakeFullRequest in place, then the scheme dispatched builder to frame
// the encoded payload into its wire spans.
func assemble(raw string) (*request.RequestData, error) {
	typ, err := request.RequestTypeFromString(method)
	if err != nil {
		return nil, err
	}

	i := strings.Index(raw, "://")
	if i < 0 {
		return nil, &errors2.BuildError{Addr: raw, Context: "url must include a scheme"}
	}
	msg := &request.Message{Scheme: raw[:i], Addr: raw[i+3:], Data: []byte(content)}

	var hdr []byte
	for _, h := range headers {
		hdr = append(hdr, h...)
		hdr = append(hdr, "\r\n"...)
	}

	var flags request.RequestFlags
	if absoluteURI {
		flags |= request.AbsoluteURI
	}

	if err := request.MakeFullRequest(msg, hdr, contentType, typ, flags); err != nil {
		return nil, err
	}

	b, ok := request.BuilderForScheme(msg.Scheme)
	if !ok {
		return nil, &errors2.BuildError{Scheme: msg.Scheme, Addr: msg.Addr, Context: "no builder registered for scheme"}
	}
	return b.Build(msg, request.ParsedLocation{}), nil
}
