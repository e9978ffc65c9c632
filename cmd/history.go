package cmd

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shaharia-lab/render3d/internal/cli"
	"github.com/shaharia-lab/render3d/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates a command listing recent render jobs
func NewHistoryCmd(container *cli.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently rendered jobs",
		Long:  `List the most recent render jobs with their outcome, newest first.`,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !container.Settings.History.Enabled {
				container.ThemeMgr.GetCurrentTheme().Warning().Fprintf(out,
					"Render history is disabled, set history.enabled in %s to record jobs.\n",
					container.ConfigMgr.Path())
				return nil
			}

			store, err := container.History()
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				container.ThemeMgr.GetCurrentTheme().Subtle().Fprintln(out, "No render jobs recorded yet.")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Job", "Kind", "Status", "Duration", "Output", "When"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)

			for _, e := range entries {
				statusColor := tablewriter.Colors{tablewriter.Bold, tablewriter.FgGreenColor}
				if e.Status != history.StatusSucceeded {
					statusColor = tablewriter.Colors{tablewriter.Bold, tablewriter.FgRedColor}
				}
				row := []string{
					shortID(e.JobID),
					e.Kind,
					string(e.Status),
					e.Duration.Round(time.Millisecond).String(),
					e.Output,
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				}
				if container.ThemeMgr.GetCurrentTheme().IsEnabled() {
					table.Rich(row, []tablewriter.Colors{{}, {}, statusColor, {}, {}, {}})
				} else {
					table.Append(row)
				}
			}

			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of jobs to show")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
