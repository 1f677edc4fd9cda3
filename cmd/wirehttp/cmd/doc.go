/*
Package cmd provides all the commands for the wirehttp binary.

The commands are separated by file, one file per subcommand. The shared
request shaping flags (method, headers, data, content type, absolute-uri)
are attached to every command that assembles a request.

there are a few global CLI flags that can be used to configure logging
and output. These are defined by the globally exposed variables
*/
package cmd
