package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet_maintenance/internal/adapter/http/dto/response"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	ok   = color.New(color.FgGreen).SprintFunc()
	warn = color.New(color.FgYellow).SprintFunc()
	bad  = color.New(color.FgRed).SprintFunc()
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reconciliation scheduler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, log, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					log.Error().Err(err).Msg("closing resources")
				}
			}()

			if err := a.Serve(ctx); err != nil {
				return err
			}
			log.Info().Msg("server stopped")
			return nil
		},
	}
}

func ReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run one reconciliation pass over active work orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			a, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.Reconciliation.RunOnce(cmd.Context())
			if err != nil {
				return fmt.Errorf("reconciliation failed: %w", err)
			}
			res := response.FromRunReport(report)
			if asJSON {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintf(out, "%s another reconciliation run is in progress\n", warn("SKIPPED"))
				return nil
			}
			status := ok("OK")
			if res.Failures > 0 {
				status = bad("FAILURES")
			}
			fmt.Fprintf(out, "%s run %s finished in %s\n", status, res.RunID, time.Duration(res.DurationMs)*time.Millisecond)
			fmt.Fprintf(out, "  orders scanned:  %d\n", res.OrdersScanned)
			fmt.Fprintf(out, "  orders updated:  %d\n", res.OrdersUpdated)
			fmt.Fprintf(out, "  orders skipped:  %d\n", res.OrdersSkipped)
			fmt.Fprintf(out, "  entries updated: %d\n", res.EntriesUpdated)
			fmt.Fprintf(out, "  failures:        %d\n", res.Failures)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print the run report as JSON")
	return cmd
}

func ElapsedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elapsed <work-order-id>",
		Short: "Show the live elapsed active time of a work order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			a, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			elapsed, err := a.WorkOrders.GetElapsed(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("work order %s: %w", args[0], err)
			}
			res := response.FromElapsed(args[0], elapsed)
			if asJSON {
				return writeJSON(cmd, res)
			}

			state := ok("running")
			if res.IsPaused {
				state = warn("paused")
				if res.PausedReason != "" {
					state += " (" + res.PausedReason + ")"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %.2fh  %s\n",
				res.WorkOrderID, res.ElapsedHours, state)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print the elapsed time as JSON")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, bad(err.Error()))
		os.Exit(1)
	}
}
