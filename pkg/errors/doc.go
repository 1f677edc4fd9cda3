/*
The errors package provides a custom error type and utilities used when
assembling requests for many targets in one pass.

The error type carries the scheme tag and target of the message that
failed to encode, and the printing utilities assist in graphically
representing accumulated errors with corresponding nested depth.

Usage

	import errors2 "github.com/wirehttp/wirehttp/pkg/errors"

	...

	if err := merr.ErrorOrNil(); err != nil {
		errors2.PrintError(err, 0)
		return err
	}
*/
package errors
