package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/devenderkumar212003/cpu-scheduler/internal/loader"
	"github.com/devenderkumar212003/cpu-scheduler/internal/recording"
	"github.com/devenderkumar212003/cpu-scheduler/internal/report"
	"github.com/devenderkumar212003/cpu-scheduler/internal/responses"
	"github.com/devenderkumar212003/cpu-scheduler/internal/schedulers"
)

var errNoInput = errors.New("give a process file or --case")

var simulateCmd = &cobra.Command{
	Use:   "simulate [processes.csv]",
	Short: "Run scheduling policies over a process file.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int("case", 0, "1-based index into the configured cases")
	simulateCmd.Flags().StringSlice("policy", nil, "policy keys to run (default all)")
	simulateCmd.Flags().Int("quantum", 0, "round robin time quantum (default from config)")
	simulateCmd.Flags().String("format", "table", "output format: table or json")
	simulateCmd.Flags().String("record", "", "record results into <path>.sqlite3")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	c, err := schedulerConfig()
	if err != nil {
		return err
	}
	if q, _ := cmd.Flags().GetInt("quantum"); q != 0 {
		c.RoundRobinTimeQuantum = q
	}

	path, err := inputPath(cmd, args, c.Case)
	if err != nil {
		return err
	}
	jobs, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	log.Printf("loaded %d processes from %s", len(jobs), path)

	entries, err := schedulers.Catalog(c.RoundRobinTimeQuantum, c.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		return err
	}
	keys, _ := cmd.Flags().GetStringSlice("policy")
	selected, err := schedulers.Filter(entries, keys)
	if err != nil {
		return fmt.Errorf("%w (known: %v)", err, schedulers.Keys(entries))
	}

	outcomes, err := schedulers.Compare(jobs, selected, engineLogger(c))
	if err != nil {
		return err
	}

	recordPath, _ := cmd.Flags().GetString("record")
	if recordPath == "" {
		recordPath = c.RecordPath
	}
	if recordPath != "" {
		if err := record(recordPath, outcomes); err != nil {
			return err
		}
	}

	format, _ := cmd.Flags().GetString("format")
	return render(cmd.OutOrStdout(), format, outcomes)
}

func inputPath(cmd *cobra.Command, args []string, lookup func(int) (string, error)) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	index, _ := cmd.Flags().GetInt("case")
	if index == 0 {
		return "", errNoInput
	}
	return lookup(index)
}

func record(path string, outcomes []schedulers.Outcome) error {
	recorder, err := recording.New(path)
	if err != nil {
		return err
	}

	runID := recording.NewRunID()
	for _, o := range outcomes {
		if err := recorder.Record(runID, o.Key, o.Result); err != nil {
			recorder.Close()
			return err
		}
	}
	if err := recorder.Close(); err != nil {
		return err
	}
	log.Printf("recorded run %s into %s", runID, recorder.Filename())
	return nil
}

func render(w io.Writer, format string, outcomes []schedulers.Outcome) error {
	switch format {
	case "json":
		response := make([]responses.ScheduleResponse, 0, len(outcomes))
		for _, o := range outcomes {
			response = append(response, schedulers.GenerateResponse(o.Key, o.Result))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	case "table":
		for _, o := range outcomes {
			report.RenderResult(w, o.Result.Policy, o.Result)
		}
		if len(outcomes) > 1 {
			report.RenderComparison(w, outcomes)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
