package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/terminus/internal/record"
)

// NewBelongingCommand creates the belonging command group.
func NewBelongingCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "belonging",
		Aliases: []string{"belongings"},
		Short:   "Manage the belongings inventory",
	}
	cmd.AddCommand(newBelongingAddCommand(rootOpts))
	cmd.AddCommand(newBelongingListCommand(rootOpts))
	cmd.AddCommand(newBelongingDeleteCommand(rootOpts))
	return cmd
}

func newBelongingAddCommand(rootOpts *RootOptions) *cobra.Command {
	var b record.Belonging
	var category string

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a belonging",
		Example: `  terminus belonging add --name "Grandfather's watch" --category mementos --recipient Tom`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b.Category = record.BelongingCategory(category)
			return withSession(cmd, rootOpts, func(s *session) error {
				saved, err := s.store.AddBelonging(s.ctx, b)
				if err != nil {
					return storeError("failed to save belonging", err)
				}
				return s.formatter.Success(saved, func(out io.Writer) {
					fmt.Fprintf(out, "Belonging saved (id %d)\n", saved.ID)
				})
			})
		},
	}

	cmd.Flags().StringVar(&b.Name, "name", "", "item name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category: "+choices(record.AllBelongingCategories())+" (required)")
	cmd.Flags().StringVar(&b.Location, "location", "", "where the item is kept")
	cmd.Flags().StringVar(&b.Recipient, "recipient", "", "who should receive it")
	cmd.Flags().StringVar(&b.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newBelongingListCommand(rootOpts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List belongings, optionally for one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter record.BelongingCategory
			if category != "" && category != "all" {
				c, err := record.ParseBelongingCategory(category)
				if err != nil {
					return WrapExitError(ExitCommandError, ErrCodeInvalidInput, "invalid --category", err)
				}
				filter = c
			}
			return withSession(cmd, rootOpts, func(s *session) error {
				items := s.store.Belongings()
				if filter != "" {
					items = s.store.BelongingsByCategory(filter)
				}
				return s.formatter.Success(items, func(out io.Writer) {
					if len(items) == 0 {
						fmt.Fprintln(out, "No belongings recorded.")
						return
					}
					tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tLOCATION\tRECIPIENT")
					for _, b := range items {
						fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.Category, b.Location, b.Recipient)
					}
					_ = tw.Flush()
				})
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list this category: all|"+choices(record.AllBelongingCategories()))

	return cmd
}

func newBelongingDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a belonging",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, rootOpts, func(s *session) error {
				found := containsID(s.store.Belongings(), id, func(b record.Belonging) int64 { return b.ID })
				if err := s.store.DeleteBelonging(s.ctx, id); err != nil {
					return storeError("failed to delete belonging", err)
				}
				return reportDelete(s.formatter, "belonging", id, found)
			})
		},
	}
}
