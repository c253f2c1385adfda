package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Softileo/schedule-saas/internal/httpapi"
	"github.com/Softileo/schedule-saas/internal/scheduler"
	"github.com/Softileo/schedule-saas/internal/timeutil"
)

func newSolveCommand() *cobra.Command {
	var (
		outputJSON bool
		timeLimit  time.Duration
		seed       int64
		useSeed    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [request-file]",
		Short: "Solve a GenerateScheduleRequest JSON payload and print the result",
		Long: "Reads a GenerateScheduleRequest JSON document from the given file, " +
			"or from stdin when no file is given, runs the scheduler and prints " +
			"the resulting shift assignments.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()

			r, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()

			buildInput, reqTimeLimit, err := httpapi.DecodeBuildInput(r)
			if err != nil {
				return fmt.Errorf("decode request: %w", err)
			}

			limit := timeLimit
			if limit <= 0 && reqTimeLimit != nil {
				limit = time.Duration(*reqTimeLimit) * time.Second
			}

			opts := scheduler.Options{SolverTimeLimit: limit}
			if useSeed {
				opts.Seed = &seed
			}

			result := scheduler.Generate(buildInput, opts)

			if outputJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			printHuman(cmd.OutOrStdout(), runID, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "print the result as JSON instead of a table")
	cmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "override the solver time limit (e.g. 30s)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fix the solver's random seed for reproducible runs")
	cmd.Flags().BoolVar(&useSeed, "deterministic", false, "use --seed instead of a time-based seed")

	return cmd
}

func openInput(args []string) (io.Reader, func() error, error) {
	if len(args) == 0 {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open request file: %w", err)
	}
	return f, f.Close, nil
}

func printJSON(w io.Writer, result *scheduler.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(httpapi.EncodeResult(result))
}

func printHuman(w io.Writer, runID string, result *scheduler.Result) {
	fmt.Fprintf(w, "Run ID: %s\n", runID)

	switch result.Status {
	case scheduler.StatusSuccess:
		printShiftTable(w, result)
	default:
		color.New(color.FgRed, color.Bold).Fprintf(w, "Status: %s\n", result.Status)
		fmt.Fprintf(w, "Error: %s\n", result.Error)
		for _, reason := range result.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
		if len(result.Suggestions) > 0 {
			fmt.Fprintln(w, "Suggestions:")
			for _, s := range result.Suggestions {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
	}
}

func printShiftTable(w io.Writer, result *scheduler.Result) {
	statusColor := color.New(color.FgGreen, color.Bold)
	if result.Statistics.SolverStatus != "OPTIMAL" {
		statusColor = color.New(color.FgYellow, color.Bold)
	}
	statusColor.Fprintf(w, "Status: %s (%s)\n", result.Status, result.Statistics.SolverStatus)
	fmt.Fprintf(w, "Quality: %.1f%%  Objective: %d  Shifts: %d  Solve time: %.2fs\n\n",
		result.Statistics.QualityPercent,
		result.Statistics.ObjectiveValue,
		result.Statistics.TotalShiftsAssigned,
		result.Statistics.SolveTimeSeconds,
	)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Employee", "Template", "Start", "End", "Hours"})
	table.SetBorder(false)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
	)

	for _, s := range result.Shifts {
		table.Append([]string{
			s.Date.Format("2006-01-02"),
			s.EmployeeName,
			s.TemplateName,
			timeutil.FormatClock(s.StartMinutes),
			timeutil.FormatClock(s.EndMinutes),
			fmt.Sprintf("%.1f", float64(s.DurationMinutes)/60.0),
		})
	}
	table.Render()

	fmt.Fprintln(w, "\nHours by employee:")
	names := make([]string, 0, len(result.Statistics.HoursByEmployee))
	for name := range result.Statistics.HoursByEmployee {
		names = append(names, name)
	}
	sortStrings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-30s %.1fh\n", name, result.Statistics.HoursByEmployee[name])
	}
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
