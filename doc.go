/*
Package wirehttp provides the request-construction core of an asynchronous
HTTP transport: builders and an assembler that turn a logical request
description into exact, ready-to-transmit HTTP/1.1 bytes, and the
lock-free bookkeeping containers the surrounding transport uses for
per-connection state.

There are no exports in the root package.

CLI tools part of `cmd/` include:
	- wirehttp - assemble, inspect and send raw request bytes
*/
package wirehttp
