package cmd

import (
	"io"
	"net"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	errors2 "github.com/wirehttp/wirehttp/pkg/errors"
	"github.com/wirehttp/wirehttp/pkg/log"
	"github.com/wirehttp/wirehttp/pkg/request"
)

var (
	sendTimeout = 3 * time.Second
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send URL",
	Short: "assemble a request and deliver it over a raw tcp connection",
	Long: `send assembles the request like build, dials host:port and writes the
spans as a single vectored write, then streams whatever the server sends
back to stdout until the connection closes or the timeout fires.

TLS belongs to the transport layer, so https targets are refused here.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rd, err := assemble(args[0])
		if err != nil {
			errors2.PrintError(err, 0)
			return err
		}

		loc, err := request.ParseLocation(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to parse url")
		}
		if loc.Scheme == request.SchemeHTTPS {
			return &errors2.BuildError{Scheme: loc.Scheme, Addr: loc.Host, Context: "send only speaks plain tcp, tls is the transport's job"}
		}
		port := loc.Port
		if port == "" {
			port = "80"
		}

		addr := net.JoinHostPort(loc.Host, port)
		conn, err := net.DialTimeout("tcp", addr, sendTimeout)
		if err != nil {
			return errors.Wrap(err, "failed to dial")
		}
		defer conn.Close()
		conn.SetDeadline(time.Now().Add(sendTimeout))

		n, err := rd.SendTo(conn)
		if err != nil {
			return errors.Wrap(err, "failed to write request")
		}
		log.Debug().Str("addr", addr).Int64("wrote", n).Msg("request sent")

		if _, err := io.Copy(os.Stdout, conn); err != nil {
			if nerr, ok := err.(net.Error); ok && nerr.Timeout() {
				log.Trace().Msg("read timed out. closing")
				return nil
			}
			return errors.Wrap(err, "failed to read response")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	addRequestFlags(sendCmd)
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 3*time.Second, "dial, write and read deadline")
}
