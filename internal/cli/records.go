package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slimtrack/internal/app"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the record store if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Store ready (%s, %d records)\n", s.cfg.Backend, s.store.Count(cmd.Context()))
				return nil
			})
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var weight, height, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a weight and height measurement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				rec, err := s.records.Add(cmd.Context(), weight, height, notes)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added record %d: BMI %.2f (%s)\n",
					rec.ID, rec.BMI, s.categorizer.Categorize(rec.BMI).Title())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "Weight in kilograms")
	cmd.Flags().StringVar(&height, "height", "", "Height in meters")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				out := cmd.OutOrStdout()
				records := s.records.List(cmd.Context())
				if len(records) == 0 {
					fmt.Fprintln(out, "No records yet.")
					return nil
				}
				fmt.Fprintln(out, "ID\tDATE\tWEIGHT\tHEIGHT\tBMI\tCATEGORY\tNOTES")
				for _, r := range records {
					fmt.Fprintf(out, "%d\t%s\t%.1f\t%.2f\t%.2f\t%s\t%s\n",
						r.ID, r.Date, r.Weight, r.Height, r.BMI, s.categorizer.Categorize(r.BMI).Title(), r.Notes)
				}
				return nil
			})
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseInt64Arg("record id", args[0])
			if err != nil {
				return err
			}
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				if err := s.records.Delete(cmd.Context(), id); err != nil {
					if errors.Is(err, app.ErrRecordNotFound) {
						return fmt.Errorf("record %d not found", id)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %d\n", id)
				return nil
			})
		},
	}
}

func newSuggestCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Show suggestions based on the latest BMI and weight trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStack(cmd.Context(), cmd.ErrOrStderr(), func(s *stack) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.suggestions.Generate(cmd.Context()).Text())
				return nil
			})
		},
	}
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
