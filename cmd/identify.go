package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
)

const fallback = "<unset>"

func init() {
	cmdRoot.AddCommand(cmdIdentify())
}

func cmdIdentify() *cobra.Command {
	return &cobra.Command{
		Use:          "identify",
		Short:        "Identify the song recorded in an audio file and fetch its lyrics",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()
			app.logger.Debugf("read %s from %s", humanize.Bytes(uint64(len(data))), args[0])

			resolution, err := app.pipeline.ResolveSongAndLyrics(cmd.Context(), entity.Sample{Data: data})
			if err != nil {
				return err
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 0, ' ', tabwriter.AlignRight)
			fmt.Fprintln(table, "Title\t", resolution.Song.Title)
			fmt.Fprintln(table, "Artist\t", util.Ternary(resolution.Song.Artist != "", resolution.Song.Artist, fallback))
			fmt.Fprintln(table, "Album\t", util.Ternary(resolution.Song.Album != "", resolution.Song.Album, fallback))
			fmt.Fprintln(table, "YouTube ID\t", util.Ternary(resolution.Song.YoutubeID != "", resolution.Song.YoutubeID, fallback))
			fmt.Fprintln(table, "Spotify ID\t", util.Ternary(resolution.Song.SpotifyID != "", resolution.Song.SpotifyID, fallback))
			fmt.Fprintln(table, "Artwork URL\t", util.Ternary(resolution.Song.ArtworkURL != "", resolution.Song.ArtworkURL, fallback))
			fmt.Fprintln(table, "Lyrics source\t", resolution.LyricsSource)
			fmt.Fprintln(table, "Formatting\t", resolution.Formatting)
			if err := table.Flush(); err != nil {
				return err
			}

			if resolution.Song.Mock {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "\nmatch is mock data, fingerprinting credentials are not set")
			}
			if resolution.Lyrics != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), resolution.Lyrics.Text)
			}
			return nil
		},
	}
}
