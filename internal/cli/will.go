package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/record"
)

// NewWillCommand creates the will command group.
func NewWillCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "will",
		Short: "Manage wills",
	}
	cmd.AddCommand(newWillAddCommand(rootOpts))
	cmd.AddCommand(newWillListCommand(rootOpts))
	cmd.AddCommand(newWillDeleteCommand(rootOpts))
	return cmd
}

func newWillAddCommand(rootOpts *RootOptions) *cobra.Command {
	var w record.Will

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a will",
		Example: `  terminus will add --title "My will" --assets "House, savings" --beneficiaries "Mei, Tom"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				saved, err := s.store.AddWill(s.ctx, w)
				if err != nil {
					return storeError("failed to save will", err)
				}
				return s.formatter.Success(saved, func(out io.Writer) {
					fmt.Fprintf(out, "Will saved (id %d)\n", saved.ID)
				})
			})
		},
	}

	cmd.Flags().StringVar(&w.Title, "title", "", "will title (required)")
	cmd.Flags().StringVar(&w.Assets, "assets", "", "assets covered")
	cmd.Flags().StringVar(&w.Beneficiaries, "beneficiaries", "", "beneficiaries")
	cmd.Flags().StringVar(&w.Special, "special", "", "special instructions")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newWillListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wills in the order they were written",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, rootOpts, func(s *session) error {
				wills := s.store.Wills()
				return s.formatter.Success(wills, func(out io.Writer) {
					if len(wills) == 0 {
						fmt.Fprintln(out, "No wills yet.")
						return
					}
					tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tCREATED\tTITLE\tBENEFICIARIES")
					for _, w := range wills {
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", w.ID, w.CreatedAt, w.Title, w.Beneficiaries)
					}
					_ = tw.Flush()
				})
			})
		},
	}
}

func newWillDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a will",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, rootOpts, func(s *session) error {
				found := containsID(s.store.Wills(), id, func(w record.Will) int64 { return w.ID })
				if err := s.store.DeleteWill(s.ctx, id); err != nil {
					return storeError("failed to delete will", err)
				}
				return reportDelete(s.formatter, "will", id, found)
			})
		},
	}
}

// deleteResult is the payload of every delete command.
type deleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func reportDelete(f *OutputFormatter, kind string, id int64, found bool) error {
	return f.Success(deleteResult{ID: id, Deleted: found}, func(out io.Writer) {
		if found {
			fmt.Fprintf(out, "Deleted %s %d\n", kind, id)
		} else {
			fmt.Fprintf(out, "No %s with id %d; nothing deleted\n", kind, id)
		}
	})
}

func containsID[T any](items []T, id int64, idOf func(T) int64) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}
