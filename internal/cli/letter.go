package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/record"
)

// NewLetterCommand creates the letter command group.
func NewLetterCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "letter",
		Aliases: []string{"letters"},
		Short:   "Manage farewell letters",
	}
	cmd.AddCommand(newLetterAddCommand(rootOpts))
	cmd.AddCommand(newLetterListCommand(rootOpts))
	cmd.AddCommand(newLetterDeleteCommand(rootOpts))
	return cmd
}

func newLetterAddCommand(rootOpts *RootOptions) *cobra.Command {
	var l record.Letter
	var timing, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a farewell letter",
		Long: `Write a farewell letter. The content may use Markdown; it is rendered
in the html export.

A letter with --timing specific-date needs --date.`,
		Example: `  terminus letter add --recipient Mei --title "For your wedding" \
    --content "I am **so** proud of you." --timing specific-date --date 2040-06-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l.Timing = record.LetterTiming(timing)
			l.Date = record.Date(date)
			return withSession(cmd, rootOpts, func(s *session) error {
				saved, err := s.store.AddLetter(s.ctx, l)
				if err != nil {
					return storeError("failed to save letter", err)
				}
				return s.formatter.Success(saved, func(out io.Writer) {
					fmt.Fprintf(out, "Letter saved (id %d)\n", saved.ID)
				})
			})
		},
	}

	cmd.Flags().StringVar(&l.Recipient, "recipient", "", "who the letter is for (required)")
	cmd.Flags().StringVar(&l.Title, "title", "", "letter title")
	cmd.Flags().StringVar(&l.Content, "content", "", "letter body, Markdown allowed (required)")
	cmd.Flags().StringVar(&timing, "timing", string(record.TimingAfterDeath), "when to deliver: "+choices(record.AllLetterTimings()))
	cmd.Flags().StringVar(&date, "date", "", "delivery date YYYY-MM-DD (for specific-date)")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newLetterListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				letters := s.store.Letters()
				return s.formatter.Success(letters, func(out io.Writer) {
					if len(letters) == 0 {
						fmt.Fprintln(out, "No letters written.")
						return
					}
					tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tRECIPIENT\tTITLE\tDELIVERY")
					for _, l := range letters {
						delivery := string(l.Timing)
						if !l.Date.IsZero() {
							delivery += " " + string(l.Date)
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.ID, l.Recipient, l.Title, delivery)
					}
					_ = tw.Flush()
				})
			})
		},
	}
}

func newLetterDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, rootOpts, func(s *session) error {
				found := containsID(s.store.Letters(), id, func(l record.Letter) int64 { return l.ID })
				if err := s.store.DeleteLetter(s.ctx, id); err != nil {
					return storeError("failed to delete letter", err)
				}
				return reportDelete(s.formatter, "letter", id, found)
			})
		},
	}
}
