// Package inspect renders human readable summaries of built requests.
package inspect

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/wirehttp/wirehttp/pkg/request"
)

const previewLen = 48

// WriteSpanTable renders one row per span of the built request, with the
// span kind, its size and an escaped preview of its leading bytes. The
// footer carries the total wire size.
func WriteSpanTable(w io.Writer, r *request.RequestData) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"span", "size", "preview"})
	table.SetFooter([]string{"total", humanize.Bytes(uint64(r.Len())), ""})
	for i, p := range r.Parts() {
		table.Append([]string{
			strconv.Itoa(i),
			humanize.Bytes(uint64(len(p))),
			preview(p),
		})
	}
	table.Render()
}

// preview returns an escaped, truncated rendering of the span so CRLFs
// and binary bytes survive a terminal.
func preview(p []byte) string {
	q := strconv.Quote(string(p))
	q = q[1 : len(q)-1]
	if len(q) > previewLen {
		return q[:previewLen] + "..."
	}
	return q
}
