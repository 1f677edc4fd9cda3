package errors

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/wirehttp/wirehttp/pkg/log"
)

// prefixFromDepth will create the indent prefix for a certain depth,
// e.g. 2 yields "    "
func prefixFromDepth(depth int) string {
	var p []byte
	for i := 0; i < depth; i++ {
		p = append(p, "  "...)
	}
	return string(p)
}

// PrintError traverses a nested error and recursively logs any
// BuildErrors found. multierror.Errors are unpacked and each member
// printed at the next depth.
func PrintError(err error, depth int) {
	var (
		merr *multierror.Error
		berr *BuildError
	)

	if errors.As(err, &merr) {
		for _, v := range merr.Errors {
			PrintError(v, depth+1)
		}
	} else if errors.As(err, &berr) {
		berr.LogError(depth)
	} else {
		log.Debug().Err(err).Msg(prefixFromDepth(depth) + "error")
	}
}

// BuildError carries the context of a failed request assembly: which
// message it was for and why it could not be encoded.
type BuildError struct {
	Scheme  string // Scheme is the message's scheme tag at the time of failure
	Addr    string // Addr is the target the message pointed at
	Context string // Context is arbitrary helpful text explaining the failure
	Err     error  // Err is the underlying cause, if any
}

// Error returns the string representation of the error. If the cause is
// itself a wrapped error, it is omitted here so the caller can decide how
// to render the chain.
func (b *BuildError) Error() string {
	if b.Err != nil && errors.Unwrap(b.Err) != nil {
		return fmt.Sprintf("buildError [%s %s]: %s", b.Scheme, b.Addr, b.Context)
	}
	if b.Err != nil {
		return fmt.Sprintf("buildError [%s %s]: %s: %s", b.Scheme, b.Addr, b.Context, b.Err.Error())
	}
	return fmt.Sprintf("buildError [%s %s]: %s", b.Scheme, b.Addr, b.Context)
}

func (b *BuildError) Unwrap() error {
	return b.Err
}

// LogError logs the context surrounding the error to Debug(). The depth
// argument controls the indentation of the pretty printed error.
func (b *BuildError) LogError(depth int) {
	var (
		merr *multierror.Error
		berr *BuildError
	)
	base := log.Debug().
		Str("Scheme", b.Scheme).
		Str("Addr", b.Addr).
		Str("Context", b.Context)

	if errors.As(b.Err, &merr) {
		base.Msg(prefixFromDepth(depth))
		PrintError(merr, depth+1)
	} else if errors.As(b.Err, &berr) {
		base.Msg(prefixFromDepth(depth))
		berr.LogError(depth + 1)
	} else {
		base.Err(b.Err).Msg(prefixFromDepth(depth))
	}
}
