package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DeepakJD1226/Consultancy/internal/app"
	"github.com/DeepakJD1226/Consultancy/internal/config"
	"github.com/DeepakJD1226/Consultancy/internal/database"
	"github.com/DeepakJD1226/Consultancy/internal/logger"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
)

// NewRootCommand builds the rktextiles CLI. With no subcommand it serves the API.
func NewRootCommand() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:          "rktextiles",
		Short:        "R.K. Textiles order, inventory and billing API",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve)
	root.AddCommand(newReportCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI until SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.HTTP.Port, _ = cmd.Flags().GetInt("port")
			}
			if noSeed, _ := cmd.Flags().GetBool("no-seed"); noSeed {
				cfg.SeedData = false
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			application, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
	cmd.Flags().Int("port", 5000, "HTTP port (overrides PORT)")
	cmd.Flags().Bool("no-seed", false, "Start with an empty store")
	return cmd
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "report [dashboard|sales|inventory|customers|mills|billing]",
		Short:     "Print a report over the sample data as JSON",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"dashboard", "sales", "inventory", "customers", "mills", "billing"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reports, err := seededReportService(ctx)
			if err != nil {
				return err
			}

			var out interface{}
			switch args[0] {
			case "dashboard":
				out, err = reports.Dashboard(ctx)
			case "sales":
				from, _ := cmd.Flags().GetString("from")
				to, _ := cmd.Flags().GetString("to")
				out, err = reports.Sales(ctx, service.SalesQuery{FromDate: from, ToDate: to})
			case "inventory":
				out, err = reports.Inventory(ctx)
			case "customers":
				out, err = reports.Customers(ctx)
			case "mills":
				out, err = reports.MillPerformance(ctx)
			case "billing":
				out, err = reports.Billing(ctx)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().String("from", "", "Sales report lower bound (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Sales report upper bound (YYYY-MM-DD)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.Name, app.Version)
		},
	}
}

func seededReportService(ctx context.Context) (service.ReportService, error) {
	db := database.Open()
	if err := database.Seed(ctx, db); err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return service.NewReportService(
		repository.NewCustomerRepository(db),
		repository.NewOrderRepository(db),
		repository.NewInventoryRepository(db),
		repository.NewBillRepository(db),
		repository.NewMillRepository(db),
	), nil
}
