package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fund_sync/internal/config"
	"fund_sync/internal/domain"
	"fund_sync/internal/output"
	"fund_sync/internal/scheduler"
	"fund_sync/internal/service"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "syncer",
		Short:         "Keep funds and their fundraising designations in sync",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yaml", "path to config file")

	cmd.AddCommand(
		newServeCmd(opts),
		newPullCmd(opts),
		newPushCmd(opts),
		newStatusCmd(opts),
		newConflictsCmd(opts),
		newRetryCmd(opts),
		newTemplateCmd(opts),
		newSyncNowCmd(opts),
	)
	return cmd
}

// withApp runs fn against a wired app. One-shot commands log to stderr so
// their tables stay readable on stdout.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app) error) error {
	logger := setupLogger(os.Stderr, opts.cfg.LogLevel)

	a, err := newApp(opts.cfg, logger, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), a)
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run periodic reconciliation and handle fund lifecycle events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			logger := setupLogger(os.Stdout, cfg.LogLevel)

			a, err := newApp(cfg, logger, true)
			if err != nil {
				logger.Error("failed to start", "error", err)
				return err
			}
			defer a.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				select {
				case sig := <-sigCh:
					logger.Info("received shutdown signal", "signal", sig)
					cancel()
				case <-ctx.Done():
				}
			}()

			sched := scheduler.NewScheduler(a.service, cfg.Sync.Interval, cfg.Sync.PassLockTTL, logger)

			status, err := a.service.ValidateTemplate(ctx)
			if err != nil {
				logger.Error("failed to validate template campaign", "error", err)
			}
			if status == domain.TemplatePending {
				sched.Once(ctx, "template_recheck", cfg.Sync.TemplateRecheckDelay, func(ctx context.Context) error {
					_, err := a.service.RecheckTemplate(ctx)
					return err
				})
			}

			if a.broker != nil {
				go func() {
					if err := a.broker.Consume(ctx, a.trigger); err != nil && !errors.Is(err, context.Canceled) {
						logger.Error("fund event consumer stopped", "error", err)
						cancel()
					}
				}()
			}

			logger.Info("starting fund syncer",
				"interval", cfg.Sync.Interval,
				"polling", cfg.Sync.PollingEnabled(),
				"events", a.broker != nil,
			)

			if !cfg.Sync.PollingEnabled() {
				<-ctx.Done()
				sched.Wait()
				return nil
			}

			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
				return err
			}
			return nil
		},
	}
}

func newPullCmd(opts *rootOptions) *cobra.Command {
	var (
		dryRun bool
		fundID int64
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Run one reconciliation pass from the platform",
		Long: `Run one reconciliation pass from the platform.

With --fund-id only the designation linked to that fund is fetched and
reconciled; --force then ignores the retry backoff and attempt limit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force && fundID <= 0 {
				return errors.New("--force requires --fund-id")
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				var (
					stats *domain.PassStats
					err   error
				)
				if fundID > 0 {
					stats, err = a.service.ReconcileFund(ctx, fundID, force)
				} else {
					stats, err = a.service.RunPass(ctx, service.PassOptions{DryRun: dryRun})
				}
				if err != nil {
					return err
				}
				output.PassSummary(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().Int64Var(&fundID, "fund-id", 0, "reconcile only this fund")
	cmd.Flags().BoolVar(&force, "force", false, "with --fund-id, retry even when not due or out of attempts")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "fund-id")
	return cmd
}

func newPushCmd(opts *rootOptions) *cobra.Command {
	var pushOpts service.PushOptions

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push funds to the platform",
		Long: `Push funds to the platform.

Without --record-id only published funds are considered. Funds that already
have a designation are skipped unless --update is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				stats, err := a.trigger.Push(ctx, pushOpts)
				if err != nil {
					return err
				}
				output.PushSummary(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&pushOpts.DryRun, "dry-run", false, "report what would be pushed without writing")
	cmd.Flags().BoolVar(&pushOpts.Update, "update", false, "also update funds that are already linked")
	cmd.Flags().IntVar(&pushOpts.Limit, "limit", 0, "push at most N funds (0 for no limit)")
	cmd.Flags().Int64SliceVar(&pushOpts.FundIDs, "record-id", nil, "push only these fund ids")
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the sync state of every fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				report, err := a.service.Status(ctx)
				if err != nil {
					return err
				}
				return output.StatusTable(cmd.OutOrStdout(), report)
			})
		},
	}
}

func newConflictsCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show the conflict log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				entries, err := a.service.Conflicts(ctx, limit)
				if err != nil {
					return err
				}
				return output.ConflictTable(cmd.OutOrStdout(), entries)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of most recent entries to show")
	return cmd
}

func newRetryCmd(opts *rootOptions) *cobra.Command {
	var retryOpts service.RetryOptions

	cmd := &cobra.Command{
		Use:   "retry",
		Short: "Retry or clear funds in error state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if retryOpts.Force && retryOpts.Clear {
				return errors.New("--force and --clear are mutually exclusive")
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				stats, err := a.service.RetryErrored(ctx, retryOpts)
				if err != nil {
					return err
				}
				output.RetrySummary(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&retryOpts.Force, "force", false, "retry funds that are not due or out of attempts")
	cmd.Flags().BoolVar(&retryOpts.Clear, "clear", false, "reset error state without retrying")
	return cmd
}

func newTemplateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage the template campaign used to create campaigns",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check that the configured template campaign exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				status, err := a.service.ValidateTemplate(ctx)
				if err != nil {
					return err
				}

				report, err := a.service.Status(ctx)
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "Template campaign %s: %s\n", orNone(opts.cfg.Sync.TemplateCampaignID),
					output.FormatTemplateStatus(report.TemplateName, status))
				switch status {
				case domain.TemplatePending:
					output.Warning(w, "platform unreachable; serve re-checks after %s", opts.cfg.Sync.TemplateRecheckDelay)
				case domain.TemplateInvalid:
					return errors.New("template campaign is invalid")
				case domain.TemplateUnset:
					output.Warning(w, "campaigns will not be created until a template campaign id is configured")
				}
				return nil
			})
		},
	})
	return cmd
}

func newSyncNowCmd(opts *rootOptions) *cobra.Command {
	var fundID int64

	cmd := &cobra.Command{
		Use:   "sync-now",
		Short: "Push one fund now, or run a full pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				w := cmd.OutOrStdout()
				if fundID > 0 {
					stats, err := a.trigger.Push(ctx, service.PushOptions{Update: true, FundIDs: []int64{fundID}})
					if err != nil {
						return err
					}
					if stats.Considered == 0 {
						return fmt.Errorf("fund %d: %w", fundID, domain.ErrFundNotFound)
					}
					output.PushSummary(w, stats)
					return nil
				}

				stats, err := a.service.RunPass(ctx, service.PassOptions{})
				if err != nil {
					return err
				}
				output.PassSummary(w, stats)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&fundID, "fund-id", 0, "push only this fund")
	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
