package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/msttrace/graphtext"
	"github.com/katalvlaran/msttrace/kruskal"
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Compute the Kruskal step trace of one graph",
	Long: `Reads a graph description from the given file (or stdin when no file is
given), runs the step-trace engine, and writes the JSON trace to stdout.
Malformed input exits non-zero with the parse error on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indent, _ := cmd.Flags().GetBool("indent")

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		g, err := graphtext.Parse(in)
		if err != nil {
			return err
		}
		tr, err := kruskal.Run(g)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if indent {
			rendered, err := graphtext.TraceJSONIndent(tr)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(rendered))

			return err
		}

		return graphtext.EncodeTrace(out, tr)
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Bool("indent", false, "Pretty-print the JSON trace")
}
