package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/countdown"
	"github.com/roach88/terminus/internal/record"
)

// NewLifeCommand creates the life command group.
func NewLifeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Set or show the life expectancy countdown",
	}
	cmd.AddCommand(newLifeSetCommand(rootOpts))
	cmd.AddCommand(newLifeShowCommand(rootOpts))
	return cmd
}

func newLifeSetCommand(rootOpts *RootOptions) *cobra.Command {
	var birthDate string
	var years int

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Set birth date and expected lifespan",
		Example: `  terminus life set --birth-date 1970-05-01 --years 82`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			le := record.LifeExpectancy{BirthDate: record.Date(birthDate), Years: years}
			return withSession(cmd, rootOpts, func(s *session) error {
				if err := s.store.SetLifeExpectancy(s.ctx, le); err != nil {
					return storeError("failed to save life expectancy", err)
				}
				return s.formatter.Success(le, func(out io.Writer) {
					fmt.Fprintf(out, "Countdown set: born %s, %d years\n", le.BirthDate, le.Years)
				})
			})
		},
	}

	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&years, "years", 0, fmt.Sprintf("expected lifespan in years, %d-%d (required)",
		record.MinLifeExpectancyYears, record.MaxLifeExpectancyYears))
	_ = cmd.MarkFlagRequired("birth-date")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}

// lifeView is the payload of life show.
type lifeView struct {
	record.LifeExpectancy
	Remaining countdown.Remaining `json:"remaining"`
}

func newLifeShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the countdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				le, ok := s.store.LifeExpectancy()
				if !ok {
					return NewExitError(ExitCommandError, ErrCodeNotSet, "life expectancy not set; use 'terminus life set'")
				}
				remaining, err := countdown.Compute(le, rootOpts.Now())
				if err != nil {
					return WrapExitError(ExitFailure, ErrCodeGeneric, "failed to compute countdown", err)
				}
				view := lifeView{LifeExpectancy: le, Remaining: remaining}
				return s.formatter.Success(view, func(out io.Writer) {
					fmt.Fprintf(out, "Born:      %s\n", le.BirthDate)
					fmt.Fprintf(out, "Expected:  %d years (until %s)\n", le.Years, remaining.Deadline.Format(record.DateLayout))
					fmt.Fprintf(out, "Remaining: %s\n", remaining)
				})
			})
		},
	}
}
