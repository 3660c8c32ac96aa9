package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arunsworld/nursery"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/entity"
	"github.com/streambinder/lyrika/util"
)

const excerptLength = 80

func init() {
	cmdRoot.AddCommand(cmdLyrics())
}

// parseSong splits "title - artist" queries
func parseSong(query string) *entity.Song {
	title, artist, _ := strings.Cut(query, " - ")
	return &entity.Song{Title: strings.TrimSpace(title), Artist: strings.TrimSpace(artist)}
}

func cmdLyrics() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lyrics",
		Short:        "Lookup lyrics of \"title - artist\" songs, concurrently",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("no song has been issued")
			}
			full := util.ErrWrap(false)(cmd.Flags().GetBool("full"))

			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()

			var (
				lock     sync.Mutex
				out      = cmd.OutOrStdout()
				jobs     = make([]nursery.ConcurrentJob, len(args))
				failures = color.New(color.FgRed)
				prefix   = color.New(color.Bold)
			)
			for i, query := range args {
				song := parseSong(query)
				jobs[i] = func(ctx context.Context, ch chan error) {
					lyrics, err := app.pipeline.FetchLyrics(ctx, song.Title, song.Artist)

					lock.Lock()
					defer lock.Unlock()
					prefix.Fprint(out, "[", util.Pad(song.String(), 32), "] ")
					switch {
					case errors.Is(err, entity.ErrNotFound):
						failures.Fprintln(out, "no result")
					case err != nil:
						failures.Fprintln(out, err)
					case full:
						fmt.Fprintf(out, "%s (%s)\n%s\n\n", entity.LyricsSource(lyrics), lyrics.SourceURL, lyrics.Text)
					default:
						printExcerpt(out, lyrics)
					}
				}
			}
			return nursery.RunConcurrentlyWithContext(cmd.Context(), jobs...)
		},
	}
	cmd.Flags().BoolP("full", "f", false, "Print the whole lyrics instead of an excerpt")
	return cmd
}

func printExcerpt(out io.Writer, lyrics *entity.Lyrics) {
	fmt.Fprintln(out,
		color.New(color.FgCyan).Sprint(entity.LyricsSource(lyrics)),
		util.Excerpt(strings.ReplaceAll(lyrics.Text, "\n", " / "), excerptLength))
}
