package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"subscription-sync/core/config"
	"subscription-sync/core/database"
	"subscription-sync/core/gateway"
	"subscription-sync/core/logger"
	"subscription-sync/core/storage"
	"subscription-sync/core/transient"
	syncfeature "subscription-sync/feature/sync"
	"subscription-sync/feature/sync/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncDryRun bool
	syncMode   string
	syncDate   string
	syncYes    bool
)

// syncCmd runs a complete reconciliation session from the terminal.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a subscription reconciliation session",
	Long: `Run a complete reconciliation session against the payment processor.

The session freezes the matching record IDs up front and then works through
them chunk by chunk, exactly like the HTTP pipeline. A dry run previews every
decision without touching the database.

Examples:
  # Preview the default mode (expired subscriptions with future dates)
  sync --dry-run

  # Live sync of failing subscriptions modified since a date
  sync --mode failing --date 2026-01-01 --yes

  # Full audit, statuses only
  sync --mode all_active --yes`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Preview decisions without applying them")
	syncCmd.Flags().StringVar(&syncMode, "mode", "expired_future", "Sync mode: expired_future, failing or all_active")
	syncCmd.Flags().StringVar(&syncDate, "date", "", "Only include records modified on or after this date (YYYY-MM-DD)")
	syncCmd.Flags().BoolVar(&syncYes, "yes", false, "Auto-confirm a live sync (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting subscription sync",
		zap.String("mode", syncMode),
		zap.Bool("dry_run", syncDryRun),
	)

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	table := models.Subscription{}.TableName()
	required := []string{"id", "profile_id", "gateway", "status", "expiration", "date_modified"}
	if missing, err := database.VerifyTableColumns(db, table, required); err != nil {
		l.Warn("Could not inspect subscriptions table", zap.Error(err))
	} else if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", "))
	}

	// Connect to storage (optional)
	var archiver *syncfeature.Archiver
	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		archiver = syncfeature.NewArchiver(client, cfg.Storage.Bucket, l)
		if err := archiver.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("failed to prepare archive bucket: %w", err)
		}
	}

	svc := syncfeature.NewService(db, gateway.NewClient(cfg.Gateway),
		transient.NewMemoryStore(), archiver, l, cfg.Sync)

	// A live sync mutates subscription records; make the operator say so.
	if !syncDryRun && !confirmLiveSync() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	logFile, err := svc.Initialize(ctx, syncDryRun, syncMode, syncDate)
	if err != nil {
		return fmt.Errorf("failed to initialize sync session: %w", err)
	}

	total := svc.Count()
	l.Info("Session initialized",
		zap.Int("total", total),
		zap.String("log_file", logFile),
	)
	if total == 0 {
		l.Info("No subscriptions match the selected mode.")
		return nil
	}

	var processed, succeeded, errors int
	for offset := 0; processed < total; offset += svc.ChunkSize() {
		result, err := svc.ProcessChunk(ctx, offset, syncDryRun)
		if err != nil {
			return fmt.Errorf("chunk at offset %d failed: %w", offset, err)
		}
		if result.Processed == 0 {
			break
		}
		processed += result.Processed
		succeeded += result.Succeeded
		errors += result.Errors

		l.Info("Chunk complete",
			zap.Int("offset", offset),
			zap.Int("processed", processed),
			zap.Int("total", total),
			zap.Int("errors", errors),
		)
	}

	l.Info("Sync session finished",
		zap.Int("processed", processed),
		zap.Int("succeeded", succeeded),
		zap.Int("errors", errors),
		zap.String("log_file", logFile),
	)
	return nil
}

// confirmLiveSync prompts the user for confirmation or uses the --yes flag.
func confirmLiveSync() bool {
	if syncYes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  This will modify subscription records. Type 'yes' to confirm: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
