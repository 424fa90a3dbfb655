package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"max.ks1230/expenses-ledger/internal/entity/expense"
	"max.ks1230/expenses-ledger/internal/model/aggregate"
)

func newListCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			records := s.Controller.Records()
			expense.SortNewestFirst(records)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tDESCRIPTION")
			for _, rec := range records {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.ID, rec.Date, rec.Amount, rec.Description)
			}
			return w.Flush()
		},
	}
}

func newSummaryCmd(deps Deps) *cobra.Command {
	var on string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show today, last seven days and month-to-date totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := time.Now()
			if on != "" {
				day, err := expense.Date(on).Day()
				if err != nil {
					return err
				}
				ref = day
			}

			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			summary := s.Controller.Summary(ref)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Today:        %s\n", aggregate.Money(summary.Today))
			_, _ = fmt.Fprintf(out, "Last 7 days:  %s\n", aggregate.Money(summary.LastSevenDays))
			_, _ = fmt.Fprintf(out, "This month:   %s\n", aggregate.Money(summary.ThisMonth))
			printWarnings(out, summary.Warnings)
			return nil
		},
	}
	cmd.Flags().StringVar(&on, "date", "", "reference day (YYYY-MM-DD), defaults to today")
	return cmd
}

func newDailyCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Show totals per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			groups := s.Controller.Daily()

			out := cmd.OutOrStdout()
			for i := len(groups.Buckets) - 1; i >= 0; i-- {
				b := groups.Buckets[i]
				_, _ = fmt.Fprintf(out, "%s  %s (%d)\n", b.Label(), aggregate.Money(b.Total), len(b.Records))
			}
			printWarnings(out, groups.Warnings)
			return nil
		},
	}
}

func newMonthlyCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Show totals per year and month, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			groups := s.Controller.Monthly()

			out := cmd.OutOrStdout()
			for _, year := range groups.Descending() {
				_, _ = fmt.Fprintf(out, "%d  %s\n", year.Year, aggregate.Money(year.Total))
				for i := len(year.Months) - 1; i >= 0; i-- {
					m := year.Months[i]
					_, _ = fmt.Fprintf(out, "  %-9s  %s (%d)\n", m.Month, aggregate.Money(m.Total), len(m.Records))
				}
			}
			printWarnings(out, groups.Warnings)
			return nil
		},
	}
}

func newAddCmd(deps Deps) *cobra.Command {
	var date, amount, description string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense for the selected user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = expense.NewDate(time.Now()).String()
			}
			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			created, err := s.Controller.Add(cmd.Context(), expense.Record{
				Date:        expense.Date(date),
				Amount:      expense.Amount(amount),
				Description: description,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s on %s\n", created.ID, created.Amount, created.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "expense day (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent")
	cmd.Flags().StringVar(&description, "description", "", "what it was for")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newUpdateCmd(deps Deps) *cobra.Command {
	var amount, description string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the amount or description of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch expense.Patch
			if cmd.Flags().Changed("amount") {
				a := expense.Amount(amount)
				patch.Amount = &a
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}

			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			updated, err := s.Controller.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s: %s on %s\n", updated.ID, updated.Amount, updated.Date)
			return nil
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	return cmd
}

func newDeleteCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := start(cmd.Context(), cmd, deps)
			if err != nil {
				return err
			}
			if err = s.Controller.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func printWarnings(out io.Writer, warnings aggregate.Warnings) {
	for _, w := range warnings {
		_, _ = fmt.Fprintf(out, "warning: %s\n", w.Error())
	}
}
