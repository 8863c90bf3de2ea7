// Command spmat is the driver glue around the sparse core: it wires file
// paths to arithmetic operations. All matrix semantics live in the sparse
// and matio packages; this binary only parses arguments and reports errors.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spmat/matio"
	"github.com/katalvlaran/spmat/sparse"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error; just set the exit status.
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spmat",
		Short:         "sparse integer matrix arithmetic over text files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newBinaryCmd("add", "element-wise sum of two matrix files", sparse.Add),
		newBinaryCmd("sub", "element-wise difference of two matrix files", sparse.Sub),
		newBinaryCmd("mul", "matrix product of two matrix files", sparse.Mul),
		newShowCmd(),
	)

	return root
}

// binaryOp is the shared signature of the three arithmetic facades.
type binaryOp func(a, b *sparse.Matrix, opts ...sparse.Option) (*sparse.Matrix, error)

// newBinaryCmd builds one arithmetic subcommand: read two operand files,
// apply op, write or print the result.
func newBinaryCmd(name, short string, op binaryOp) *cobra.Command {
	var (
		output    string
		entrywise bool
	)
	cmd := &cobra.Command{
		Use:   name + " <left.txt> <right.txt>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matio.ReadMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := matio.ReadMatrix(args[1])
			if err != nil {
				return err
			}

			var opts []sparse.Option
			if entrywise {
				opts = append(opts, sparse.WithEntrywiseScan())
			}
			res, err := op(a, b, opts...)
			if err != nil {
				return err
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), res)

				return nil
			}

			return matio.WriteMatrix(output, res)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&entrywise, "entrywise", false, "traverse stored entries instead of the full grid")

	return cmd
}

// newShowCmd builds the inspection subcommand: parse a file and print its
// canonical rendering plus a short shape summary.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <matrix.txt>",
		Short: "parse a matrix file and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matio.ReadMatrix(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), m)
			fmt.Fprintf(cmd.OutOrStdout(), "# %d×%d, %d stored entries\n", m.Rows(), m.Cols(), m.NNZ())

			return nil
		},
	}
}
