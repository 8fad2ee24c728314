// Package report renders simulation results as console tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
	"github.com/devenderkumar212003/cpu-scheduler/internal/schedulers"
)

// RenderResult writes the title, Gantt chart and schedule table of one run.
func RenderResult(w io.Writer, title string, result core.Result) {
	outputTitle(w, title)
	outputGantt(w, result.Slices())
	outputSchedule(w, result)
}

// RenderComparison writes one summary row per outcome.
func RenderComparison(w io.Writer, outcomes []schedulers.Outcome) {
	outputTitle(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Algorithm", "Turnaround", "Waiting", "Response", "Throughput", "CPU %", "Switches"})
	for _, o := range outcomes {
		r := o.Result
		table.Append([]string{
			o.Key,
			r.Policy,
			fmt.Sprintf("%.2f", r.AvgTurnaroundTime),
			fmt.Sprintf("%.2f", r.AvgWaitingTime),
			fmt.Sprintf("%.2f", r.AvgResponseTime),
			fmt.Sprintf("%.2f/t", r.Throughput),
			fmt.Sprintf("%.2f%%", r.CPUUtilization),
			fmt.Sprint(r.ContextSwitches),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, slices []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(slices) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	labels := make([]string, len(slices))
	spans := make([]string, len(slices))
	for i, s := range slices {
		labels[i] = s.Label
		spans[i] = fmt.Sprintf("%d-%d", s.Start, s.Stop)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader(labels)
	table.Append(spans)
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, result core.Result) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Response", "Wait", "Turnaround", "Exit"})
	for _, p := range result.Processes {
		table.Append([]string{
			p.ID,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AvgResponseTime),
		fmt.Sprintf("Average\n%.2f", result.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AvgTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t\nCPU %.2f%%", result.Throughput, result.CPUUtilization)})
	table.Render()
}
