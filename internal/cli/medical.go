package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/record"
)

// NewMedicalCommand creates the medical command group.
func NewMedicalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medical",
		Short: "Set or show the medical directive",
	}
	cmd.AddCommand(newMedicalSetCommand(rootOpts))
	cmd.AddCommand(newMedicalShowCommand(rootOpts))
	return cmd
}

func newMedicalSetCommand(rootOpts *RootOptions) *cobra.Command {
	var d record.MedicalDirective
	var treatment, place, pain string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace the medical directive",
		Long: `Replace the medical directive. Interventions default to "not wanted";
pass --cpr, --intubation, --feeding-tube or --dialysis to accept them.`,
		Example: `  terminus medical set --treatment comfort --final-place home --pain full --proxy Mei --proxy-contact 555-0100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.TreatmentPreference = record.TreatmentPreference(treatment)
			d.FinalPlace = record.FinalPlace(place)
			d.PainManagement = record.PainManagement(pain)
			return withSession(cmd, rootOpts, func(s *session) error {
				if err := s.store.SetMedicalDirective(s.ctx, d); err != nil {
					return storeError("failed to save medical directive", err)
				}
				saved, _ := s.store.MedicalDirective()
				return s.formatter.Success(saved, func(out io.Writer) {
					io.WriteString(out, "Medical directive saved\n")
				})
			})
		},
	}

	cmd.Flags().BoolVar(&d.CPR, "cpr", false, "accept cardiopulmonary resuscitation")
	cmd.Flags().BoolVar(&d.Intubation, "intubation", false, "accept intubation and mechanical ventilation")
	cmd.Flags().BoolVar(&d.FeedingTube, "feeding-tube", false, "accept tube feeding")
	cmd.Flags().BoolVar(&d.Dialysis, "dialysis", false, "accept dialysis")
	cmd.Flags().StringVar(&treatment, "treatment", "", "treatment preference: "+choices(record.AllTreatmentPreferences()))
	cmd.Flags().StringVar(&place, "final-place", "", "where to spend final days: "+choices(record.AllFinalPlaces()))
	cmd.Flags().StringVar(&pain, "pain", "", "pain management: "+choices(record.AllPainManagements()))
	cmd.Flags().StringVar(&d.HealthcareProxy, "proxy", "", "healthcare proxy")
	cmd.Flags().StringVar(&d.ProxyContact, "proxy-contact", "", "proxy contact details")
	cmd.Flags().StringVar(&d.Notes, "notes", "", "other notes")

	return cmd
}

func newMedicalShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the medical directive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				d, ok := s.store.MedicalDirective()
				if !ok {
					return NewExitError(ExitCommandError, ErrCodeNotSet, "no medical directive yet; use 'terminus medical set'")
				}
				return s.formatter.Success(d, func(out io.Writer) {
					printFields(out, [][2]string{
						{"CPR", yesNo(d.CPR)},
						{"Intubation", yesNo(d.Intubation)},
						{"Feeding tube", yesNo(d.FeedingTube)},
						{"Dialysis", yesNo(d.Dialysis)},
						{"Treatment preference", string(d.TreatmentPreference)},
						{"Final place", string(d.FinalPlace)},
						{"Pain management", string(d.PainManagement)},
						{"Healthcare proxy", d.HealthcareProxy},
						{"Proxy contact", d.ProxyContact},
						{"Notes", d.Notes},
					})
				})
			})
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
