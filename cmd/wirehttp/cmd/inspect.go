package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wirehttp/wirehttp/internal/inspect"
	errors2 "github.com/wirehttp/wirehttp/pkg/errors"
	"github.com/wirehttp/wirehttp/pkg/log"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect URL",
	Short: "show the span layout of an assembled request",
	Long: `inspect assembles a request the same way build does, but instead of
emitting the raw bytes it prints one row per wire span so you can see
which bytes live in the arena and which borrow the payload.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rd, err := assemble(args[0])
		if err != nil {
			errors2.PrintError(err, 0)
			return err
		}
		log.Debug().Object("request", rd).Msg("assembled request")
		inspect.WriteSpanTable(os.Stdout, rd)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addRequestFlags(inspectCmd)
}
