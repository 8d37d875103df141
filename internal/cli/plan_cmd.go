package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/ascent-prep/ascent/internal/cli/formatter"
	"github.com/ascent-prep/ascent/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		testDate string
		current  int
		target   int
		tutoring int
		asJSON   bool
		full     bool
		noInput  bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a study schedule",
		Long: "Generates a phased study schedule from your test date, scores, and\n" +
			"tutoring frequency. Missing inputs are collected interactively when\n" +
			"running in a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := planFormValues{
				TestDate: testDate,
				Sessions: tutoring,
			}
			if cmd.Flags().Changed("current") {
				values.CurrentScore = strconv.Itoa(current)
			}
			if cmd.Flags().Changed("target") {
				values.TargetScore = strconv.Itoa(target)
			}

			missing := missingInputs(cmd, testDate)
			if len(missing) > 0 {
				if noInput || app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("missing required flags: %v (run interactively to be prompted)", missing)
				}
				if err := planForm(&values).Run(); err != nil {
					return err
				}
			}

			req, err := requestFromValues(values)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp.Plan)
			}

			summary := formatter.FormatPlan(resp.Plan)
			weeks := formatter.FormatWeeks(resp.Plan)

			for _, w := range resp.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: %s\n", w)
			}

			interactive := app.IsInteractive != nil && app.IsInteractive()
			if interactive && !full {
				return runPager(summary + "\n\n" + weeks)
			}

			fmt.Fprintln(cmd.OutOrStdout(), summary)
			if full {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprint(cmd.OutOrStdout(), weeks)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Run with --full for the week-by-week breakdown."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&testDate, "test-date", "", "Test date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&current, "current", 0, "Current score (400-1600)")
	cmd.Flags().IntVar(&target, "target", 0, "Target score (400-1600)")
	cmd.Flags().IntVar(&tutoring, "tutoring", 1, "Tutoring sessions per week (1-4)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plan as JSON")
	cmd.Flags().BoolVar(&full, "full", false, "Print the full week-by-week breakdown")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; fail on missing flags")

	return cmd
}

// missingInputs lists the required flags not yet supplied.
func missingInputs(cmd *cobra.Command, testDate string) []string {
	var missing []string
	if testDate == "" {
		missing = append(missing, "--test-date")
	}
	if !cmd.Flags().Changed("current") {
		missing = append(missing, "--current")
	}
	if !cmd.Flags().Changed("target") {
		missing = append(missing, "--target")
	}
	return missing
}

// requestFromValues parses the raw form values into a service request.
// The form validators have already vetted formats; this is the final parse.
func requestFromValues(v planFormValues) (contract.PlanRequest, error) {
	date, err := time.Parse(dateLayout, v.TestDate)
	if err != nil {
		return contract.PlanRequest{}, fmt.Errorf("invalid test date %q: use YYYY-MM-DD", v.TestDate)
	}
	current, err := strconv.Atoi(v.CurrentScore)
	if err != nil {
		return contract.PlanRequest{}, fmt.Errorf("invalid current score %q", v.CurrentScore)
	}
	target, err := strconv.Atoi(v.TargetScore)
	if err != nil {
		return contract.PlanRequest{}, fmt.Errorf("invalid target score %q", v.TargetScore)
	}

	req := contract.NewPlanRequest(date, current, target)
	req.SessionsPerWeek = v.Sessions
	return req, nil
}
