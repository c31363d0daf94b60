package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"sinistro-sync/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	atlasBin      string
	timeout       time.Duration
	dryRun        bool
	amount        uint64
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply and inspect sinistro-sync database migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply pending migrations",
	Long: `Apply pending migrations from the migrations directory using Atlas.

Database settings come from the same DB_* variables as the server.

Examples:
  migrate apply
  migrate apply --dry-run
  migrate apply --amount 1`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	rootCmd.PersistentFlags().StringVar(&atlasBin, "atlas", "atlas", "path to the atlas binary")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
	applyCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the statements without executing them")
	applyCmd.Flags().Uint64Var(&amount, "amount", 0, "apply at most this many files (0 = all)")

	rootCmd.AddCommand(applyCmd, statusCmd)
}

// newClient copies the migrations into a temporary Atlas working dir.
func newClient() (*atlasexec.Client, func(), error) {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(migrationsDir)))
	if err != nil {
		return nil, nil, fmt.Errorf("prepare working dir: %w", err)
	}
	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		_ = wd.Close()
		return nil, nil, fmt.Errorf("init atlas client: %w", err)
	}
	return client, func() { _ = wd.Close() }, nil
}

func databaseURL() (string, error) {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return "", err
	}
	return cfg.BuildDSN(), nil
}

func runApply(cmd *cobra.Command, _ []string) error {
	url, err := databaseURL()
	if err != nil {
		return err
	}
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DirURL: "file://migrations",
		Amount: amount,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("migrate apply: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(res.Applied) == 0 {
		fmt.Fprintln(out, "No pending migrations")
		return nil
	}
	for _, f := range res.Applied {
		fmt.Fprintf(out, "applied %s\n", f.Name)
	}
	fmt.Fprintf(out, "Migrated from %q to %q\n", res.Current, res.Target)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	url, err := databaseURL()
	if err != nil {
		return err
	}
	client, cleanup, err := newClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    url,
		DirURL: "file://migrations",
	})
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "status:  %s\n", st.Status)
	fmt.Fprintf(out, "current: %s\n", st.Current)
	fmt.Fprintf(out, "next:    %s\n", st.Next)
	for _, f := range st.Pending {
		fmt.Fprintf(out, "pending %s\n", f.Name)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
