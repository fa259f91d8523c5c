// Command netcollector is the thin operator CLI around the collection
// and reconciliation engine: it drives the worker pool, the reconciler,
// and the task/history stores, but owns none of their logic itself
// (spec.md §1's "out of scope: the HTTP surface, the CLI front-end").
//
//	netcollector collect --devices-file devices.yaml
//	netcollector sync --devices-file devices.yaml --dry-run
//	netcollector task list
//	netcollector history list
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridian-net/netcollector/pkg/fieldpolicy"
	"github.com/meridian-net/netcollector/pkg/history"
	"github.com/meridian-net/netcollector/pkg/netbox"
	"github.com/meridian-net/netcollector/pkg/registry"
	"github.com/meridian-net/netcollector/pkg/session"
	"github.com/meridian-net/netcollector/pkg/settings"
	"github.com/meridian-net/netcollector/pkg/task"
	"github.com/meridian-net/netcollector/pkg/util"
	"github.com/meridian-net/netcollector/pkg/version"
)

// App holds CLI state shared across every subcommand, built once in
// PersistentPreRunE.
type App struct {
	cfg      *settings.Settings
	tasks    *task.Manager
	hist     *history.Store
	policy   *fieldpolicy.Table
	creds    registry.EnvCredentialPrompt
	maxWorkers int
	dryRun   bool
	verbose  bool
}

var app = &App{tasks: task.NewManager(), policy: fieldpolicy.NewDefaultTable()}

func (a *App) netboxClient() *netbox.Client {
	opts := netbox.DefaultOptions()
	opts.BaseURL = a.cfg.NetBoxURL
	opts.Token = a.cfg.GetNetBoxToken()
	return netbox.New(opts)
}

func (a *App) sessionOptions() session.Options {
	opts := session.DefaultOptions()
	opts.ConnectTimeout = a.cfg.GetConnectTimeout()
	return opts
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "netcollector",
		Short:   "Collect network device state and reconcile it against NetBox",
		Version: version.Info(),
		Long: `netcollector drives a parallel SSH collection pass across a device
fleet, normalizes the output into a uniform model, and reconciles it
against a NetBox-shaped inventory of record.

Subcommands:
  collect  [device...]      collect device state, print a summary
  sync     [device...]      collect then reconcile against NetBox
  task     list|get         inspect tracked background runs
  history  list|stats       inspect the persisted operation log`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			app.cfg = cfg

			store, err := history.NewStore(cfg.GetHistoryPath(), cfg.GetHistoryCapacity())
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			app.hist = store

			if app.verbose {
				util.SetLogLevel("debug")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().IntVar(&app.maxWorkers, "max-workers", 0, "bounded collection concurrency (0 = settings default)")

	rootCmd.AddCommand(
		newCollectCmd(),
		newSyncCmd(),
		newTaskCmd(),
		newHistoryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
