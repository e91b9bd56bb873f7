package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"viaduct/internal/app"
)

var (
	enginePath string
	verbose    bool
	wireCtx    *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "viaduct",
		Short: "Wire-protocol version translation engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if enginePath == "" {
				return fmt.Errorf("engine definition required (--engine)")
			}

			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "viaduct"})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			cfg, err := loadEngineConfig(enginePath)
			if err != nil {
				return err
			}
			cfg.Logger = logger

			wireCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&enginePath, "engine", "", "engine definition TOML file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(chainCmd(), versionsCmd())
	return root.Execute()
}
