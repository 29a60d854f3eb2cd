package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/record"
)

// NewFuneralCommand creates the funeral command group.
func NewFuneralCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funeral",
		Short: "Set or show the funeral plan",
	}
	cmd.AddCommand(newFuneralSetCommand(rootOpts))
	cmd.AddCommand(newFuneralShowCommand(rootOpts))
	return cmd
}

func newFuneralSetCommand(rootOpts *RootOptions) *cobra.Command {
	var plan record.FuneralPlan
	var funeralType, atmosphere string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the funeral plan",
		Long: `Replace the funeral plan. The previous plan is discarded entirely;
fields not given are left empty.`,
		Example: `  terminus funeral set --type cremation --atmosphere warm --music "Clair de lune"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.FuneralType = record.FuneralType(funeralType)
			plan.Atmosphere = record.Atmosphere(atmosphere)
			return withSession(cmd, rootOpts, func(s *session) error {
				if err := s.store.SetFuneralPlan(s.ctx, plan); err != nil {
					return storeError("failed to save funeral plan", err)
				}
				saved, _ := s.store.FuneralPlan()
				return s.formatter.Success(saved, func(out io.Writer) {
					fmt.Fprintln(out, "Funeral plan saved")
				})
			})
		},
	}

	cmd.Flags().StringVar(&funeralType, "type", "", "funeral type: "+choices(record.AllFuneralTypes()))
	cmd.Flags().StringVar(&plan.Music, "music", "", "music")
	cmd.Flags().StringVar(&atmosphere, "atmosphere", "", "atmosphere: "+choices(record.AllAtmospheres()))
	cmd.Flags().StringVar(&plan.Host, "host", "", "who hosts the ceremony")
	cmd.Flags().StringVar(&plan.Guests, "guests", "", "guest list")
	cmd.Flags().StringVar(&plan.Dress, "dress", "", "dress code")
	cmd.Flags().StringVar(&plan.Special, "special", "", "special requests")

	return cmd
}

func newFuneralShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the funeral plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				plan, ok := s.store.FuneralPlan()
				if !ok {
					return NewExitError(ExitCommandError, ErrCodeNotSet, "no funeral plan yet; use 'terminus funeral set'")
				}
				return s.formatter.Success(plan, func(out io.Writer) {
					printFields(out, [][2]string{
						{"Type", string(plan.FuneralType)},
						{"Atmosphere", string(plan.Atmosphere)},
						{"Music", plan.Music},
						{"Host", plan.Host},
						{"Guests", plan.Guests},
						{"Dress code", plan.Dress},
						{"Special", plan.Special},
					})
				})
			})
		},
	}
}

// printFields writes label/value pairs, one per line, skipping empty values.
func printFields(out io.Writer, fields [][2]string) {
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(out, "%-22s %s\n", f[0]+":", f[1])
	}
}
