package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skagedal/create-program/internal/runtime"
)

// errToolchain is returned when a required binary is missing.
var errToolchain = errors.New("node toolchain incomplete")

func newDoctorCmd() *cobra.Command {
	return newDoctorCmdWith(&runtime.Prober{})
}

func newDoctorCmdWith(p *runtime.Prober) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the Node.js toolchain is ready",
		Long: fmt.Sprintf(`Check that node and npm are on PATH and that node satisfies %s.
A missing binary fails the command; an old node version is only a warning.`, runtime.MinNodeVersion),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Runtime check:")

			missing := false
			for _, c := range p.CheckAll(cmd.Context()) {
				fmt.Fprintf(out, "  %s\n", c)
				if c.Status == runtime.StatusMissing {
					missing = true
				}
			}
			if missing {
				return errToolchain
			}
			return nil
		},
	}
}
