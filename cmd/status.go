package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/config"
	syscmd "github.com/streambinder/lyrika/sys/cmd"
)

func init() {
	cmdRoot.AddCommand(cmdStatus())
}

func describe(configured bool, live, otherwise string) string {
	if configured {
		return color.GreenString(live)
	}
	return color.YellowString(otherwise)
}

func cmdStatus() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show which providers are configured",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			var (
				acrcloud = cfg.GetACRCloudConfig()
				gemini   = cfg.GetGeminiConfig()
				server   = cfg.GetServerConfig()
				table    = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			)
			fmt.Fprintln(table, "ACRCloud\t", describe(cfg.HasACRCloudConfig(), acrcloud.Host, "mock"))
			fmt.Fprintln(table, "Genius\t", describe(cfg.HasGeniusConfig(), "configured", "mock"))
			fmt.Fprintln(table, "Gemini\t", describe(cfg.HasGeminiConfig(), gemini.Model, "mock"))
			fmt.Fprintln(table, "Spotify\t", describe(cfg.HasSpotifyConfig(), "configured", "disabled"))
			fmt.Fprintln(table, "Last.fm\t", describe(cfg.HasLastfmConfig(), "configured", "disabled"))
			fmt.Fprintln(table, "ffmpeg\t", describe(syscmd.ValidateEnvironment() == nil, "found", "missing"))
			fmt.Fprintln(table, "Lyrics formatting\t", describe(cfg.FormatLyrics(), "enabled", "disabled"))
			fmt.Fprintln(table, "Port\t", server.Port)
			fmt.Fprintln(table, "Allowed origins\t", server.AllowedOrigins)
			return table.Flush()
		},
	}
}
