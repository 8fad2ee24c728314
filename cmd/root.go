// Package cmd provides the command-line interface of the scheduler
// simulator.
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tebeka/atexit"

	"github.com/devenderkumar212003/cpu-scheduler/config"
)

var cfgFile string

// settings is populated by loadConfig before any subcommand runs.
var settings = viper.New()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cpu-scheduler",
	Short: "Simulate classical single-processor scheduling policies.",
	Long: `cpu-scheduler replays a fixed set of processes under FCFS, SJF/SRTF, ` +
		`Round Robin, Priority, LJF/LRTF, HRRN and MLFQ, and reports the Gantt ` +
		`chart together with turnaround, waiting and response times.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every dispatch, preemption and completion")
}

func loadConfig(cmd *cobra.Command) error {
	v, err := config.New(cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("log.verbose", cmd.Flags().Lookup("verbose")); err != nil {
		return err
	}
	settings = v
	return nil
}

func schedulerConfig() (*config.SchedulerConfig, error) {
	return config.FromViper(settings)
}

func engineLogger(c *config.SchedulerConfig) func(string) {
	if !c.Verbose {
		return nil
	}
	return func(msg string) {
		log.Println(msg)
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It exits through atexit so registered flushes run.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
