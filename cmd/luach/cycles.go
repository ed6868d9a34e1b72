package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/luach-api/internal/daf"
)

func newCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles [name...]",
		Short: "Print study cycle definitions as YAML",
		Long: `Cycles prints the registered study cycles, or only the named ones, in
the YAML format read from CYCLES_FILE. Edit the output and point
CYCLES_FILE or --cycles at it to override or add cycles.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.resolver.Dafs()
			names := args
			if len(names) == 0 {
				names = reg.Names()
			}

			cycles := make([]daf.Cycle, 0, len(names))
			for _, name := range names {
				calc, err := reg.Get(name)
				if err != nil {
					return fmt.Errorf("%w (known: %v)", err, reg.Names())
				}
				cycles = append(cycles, calc.Cycle())
			}

			data, err := daf.Marshal(cycles)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
