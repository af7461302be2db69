package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotUser string
	snapshotKey  string
	yesConfirm   bool
)

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export, list and restore bookmark snapshots",
	Long: `Manage per-user bookmark snapshots in object storage.

Examples:
  # Export the current bookmarks of a user
  snapshot export --user 1234567890

  # List stored snapshots
  snapshot list --user 1234567890

  # Re-add the bookmarks of a snapshot (existing bookmarks are skipped)
  snapshot restore --user 1234567890 --key snapshots/1234567890/1700000000000000000.json`,
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the bookmarks of a user",
	RunE:  runSnapshotExport,
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the snapshots of a user",
	RunE:  runSnapshotList,
}

var snapshotRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a snapshot with batch add semantics",
	RunE:  runSnapshotRestore,
}

// clearCmd deletes every bookmark of a user after confirmation.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every bookmark of a user",
	Long: `Deletes every bookmark of a user. Export a snapshot first if the
bookmarks may be needed again.

Examples:
  clear --user 1234567890
  clear --user 1234567890 --yes`,
	RunE: runClear,
}

func init() {
	for _, c := range []*cobra.Command{snapshotExportCmd, snapshotListCmd, snapshotRestoreCmd} {
		c.Flags().StringVar(&snapshotUser, "user", "", "External user id (google_id)")
		_ = c.MarkFlagRequired("user")
		snapshotCmd.AddCommand(c)
	}
	snapshotRestoreCmd.Flags().StringVar(&snapshotKey, "key", "", "Object key of the snapshot")
	_ = snapshotRestoreCmd.MarkFlagRequired("key")

	clearCmd.Flags().StringVar(&snapshotUser, "user", "", "External user id (google_id)")
	clearCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	_ = clearCmd.MarkFlagRequired("user")

	RootCmd.AddCommand(snapshotCmd)
	RootCmd.AddCommand(clearCmd)
}

func runSnapshotExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	svc, err := rt.service(ctx, true)
	if err != nil {
		return err
	}

	info, err := svc.ExportSnapshot(ctx, snapshotUser)
	if err != nil {
		return fmt.Errorf("failed to export snapshot: %w", err)
	}

	rt.logger.Info("Snapshot exported",
		zap.String("google_id", snapshotUser),
		zap.String("key", info.ObjectKey),
		zap.Int("bookmarks", info.Count),
		zap.Int64("bytes", info.Size),
	)
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	svc, err := rt.service(ctx, true)
	if err != nil {
		return err
	}

	infos, err := svc.ListSnapshots(ctx, snapshotUser)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	rt.logger.Info("Snapshots", zap.String("google_id", snapshotUser), zap.Int("count", len(infos)))
	for _, info := range infos {
		rt.logger.Info("Snapshot",
			zap.String("key", info.ObjectKey),
			zap.Int64("bytes", info.Size),
			zap.Time("last_modified", info.LastModified),
		)
	}
	return nil
}

func runSnapshotRestore(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	svc, err := rt.service(ctx, true)
	if err != nil {
		return err
	}

	result, err := svc.RestoreSnapshot(ctx, snapshotUser, snapshotKey)
	if err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	rt.logger.Info("Snapshot restored",
		zap.String("google_id", snapshotUser),
		zap.Int("added", len(result.Added)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	svc, err := rt.service(ctx, false)
	if err != nil {
		return err
	}

	if !confirmDestructiveAction() {
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	result, err := svc.ClearBookmarks(ctx, snapshotUser)
	if err != nil {
		return fmt.Errorf("failed to clear bookmarks: %w", err)
	}
	if !result.UserFound {
		rt.logger.Warn("User not found, nothing to clear", zap.String("google_id", snapshotUser))
		return nil
	}

	rt.logger.Info("Bookmarks cleared", zap.String("google_id", snapshotUser), zap.Int64("deleted", result.Deleted))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
