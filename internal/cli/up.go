package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// defaultRepo is the GitHub repository whose releases carry lemmabase binaries.
const defaultRepo = "happyhackingspace/lemmabase"

func (c *CLI) newUpCommand() *cobra.Command {
	var repo string
	var check bool

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Self-update to the latest released version",
		Example: `  lemmabase up
  lemmabase up --check
  lemmabase up --repo myfork/lemmabase`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.selfUpdate(cmd.Context(), repo, check)
		},
	}
	cmd.Flags().StringVar(&repo, "repo", defaultRepo, "GitHub owner/name to look for releases in")
	cmd.Flags().BoolVar(&check, "check", false, "Only report whether a newer release exists")
	return cmd
}

// currentVersion maps development builds to 0.0.0 so any release is newer.
func currentVersion(v string) string {
	if v == "" || v == "dev" {
		return "0.0.0"
	}
	return v
}

func (c *CLI) selfUpdate(ctx context.Context, repo string, check bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("detect latest release of %s: %w", repo, err)
	}
	if !found {
		return fmt.Errorf("no release of %s for this platform", repo)
	}

	if latest.LessOrEqual(currentVersion(c.version)) {
		fmt.Printf("Already up to date (%s)\n", c.version)
		return nil
	}
	if check {
		fmt.Printf("Update available: %s -> %s\n", c.version, latest.Version())
		return nil
	}

	slog.Info("Updating", "from", c.version, "to", latest.Version(), "repo", repo)

	exe, err := os.Executable()
	if err != nil {
		return err
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	fmt.Printf("Updated to %s\n", latest.Version())
	return nil
}
