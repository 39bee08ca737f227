package main

import (
	"log"

	"marketintel/api"
	"marketintel/internal/app"
	"marketintel/internal/config"
	"marketintel/internal/repository"
	"marketintel/internal/service"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string
	var port int

	cmd := &cobra.Command{
		Use:          "marketintel",
		Short:        "serves the market intelligence dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			marketDataService := service.NewMarketDataService(
				repository.NewYahooPriceRepository(),
				cfg.Cache.TTL,
				cfg.Fetch.Timeout,
			)

			apiHandler := api.ApiHandler{
				DashboardHandler:  app.DashboardHandler{MarketDataService: marketDataService},
				MarketDataService: marketDataService,
				HTMLTemplatesGlob: "templates/*",
			}

			return apiHandler.StartApi(cfg.Server.Port)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to yaml config file")
	cmd.Flags().IntVar(&port, "port", 0, "override the configured server port")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
