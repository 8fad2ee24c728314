package cmd

import (
	"fmt"
	"log"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/devenderkumar212003/cpu-scheduler/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulator over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := schedulerConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			c.Port = port
		}

		metrics := api.NewMetrics()
		handler := api.NewSchedulerHandlerImpl(c, metrics)
		handler.LogEvent = engineLogger(c)
		app := api.NewApp(handler, metrics)

		addr := fmt.Sprintf(":%d", c.Port)
		if open, _ := cmd.Flags().GetBool("open"); open {
			url := fmt.Sprintf("http://localhost%s/api/v1/policies", addr)
			if err := browser.OpenURL(url); err != nil {
				log.Printf("cannot open browser: %v", err)
			}
		}

		log.Printf("listening on %s", addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default from config)")
	serveCmd.Flags().Bool("open", false, "open the policy listing in a browser")
	rootCmd.AddCommand(serveCmd)
}
