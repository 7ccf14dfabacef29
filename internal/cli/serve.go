package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/animesh-sketch/red-flag-identifier/internal/config"
	"github.com/animesh-sketch/red-flag-identifier/internal/logging"
	"github.com/animesh-sketch/red-flag-identifier/internal/server"
)

var (
	flagPort  int
	flagHost  string
	flagDebug bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		log, err := logging.New(flagDebug)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		defer log.Sync()

		addr := fmt.Sprintf("%s:%d", flagHost, flagPort)
		fmt.Fprintf(os.Stdout, "Open http://%s in your browser\n", addr)

		srv := server.New(cfg, log)
		if err := srv.ListenAndServe(addr); err != nil {
			log.Errorw("server stopped", "error", err)
			exitCode = ExitRuntimeError
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&flagPort, "port", 5000, "Port for the web server")
	serveCmd.Flags().StringVar(&flagHost, "host", "127.0.0.1", "Host to bind")
	serveCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
