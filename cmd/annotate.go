package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/gemini"
)

func init() {
	cmdRoot.AddCommand(cmdAnnotate())
}

// lyricsArgument returns the lyrics given inline or, if prefixed by "@", read from file
func lyricsArgument(cmd *cobra.Command) (string, error) {
	value, _ := cmd.Flags().GetString("lyrics")
	if len(value) > 1 && value[0] == '@' {
		data, err := os.ReadFile(value[1:])
		return string(data), err
	}
	return value, nil
}

func cmdAnnotate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Run generative annotations over lyrics",
	}
	cmd.PersistentFlags().StringP("title", "t", "", "Song title")
	cmd.PersistentFlags().StringP("artist", "a", "", "Song artist")
	cmd.PersistentFlags().StringP("lyrics", "l", "", "Song lyrics, or @path to read them from file")
	cmd.AddCommand(cmdAnnotateTranslate(), cmdAnnotateMeaning(), cmdAnnotateSimilar())
	return cmd
}

func cmdAnnotateTranslate() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "translate",
		Short:        "Translate lyrics into the target language",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lyrics, err := lyricsArgument(cmd)
			if err != nil {
				return err
			}
			source, _ := cmd.Flags().GetString("source")
			target, _ := cmd.Flags().GetString("target")
			if lyrics == "" || target == "" {
				return errors.New("lyrics and target language are required")
			}

			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()

			translation, err := app.pipeline.Translate(cmd.Context(), lyrics, source, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n\n%s\n",
				translation.SourceLanguage, translation.TargetLanguage,
				gemini.APIUsed(translation.Mock, nil), translation.Translated)
			return nil
		},
	}
	cmd.Flags().String("source", "auto", "Source language")
	cmd.Flags().String("target", "", "Target language")
	return cmd
}

func cmdAnnotateMeaning() *cobra.Command {
	return &cobra.Command{
		Use:          "meaning",
		Short:        "Explain the meaning of a song",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			artist, _ := cmd.Flags().GetString("artist")
			lyrics, err := lyricsArgument(cmd)
			if err != nil {
				return err
			}
			if title == "" || artist == "" || lyrics == "" {
				return errors.New("title, artist and lyrics are required")
			}

			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()

			meaning, err := app.pipeline.ExplainMeaning(cmd.Context(), title, artist, lyrics)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), meaning.Text)
			return nil
		},
	}
}

func cmdAnnotateSimilar() *cobra.Command {
	return &cobra.Command{
		Use:          "similar",
		Short:        "Recommend songs similar to the given one",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			artist, _ := cmd.Flags().GetString("artist")
			lyrics, err := lyricsArgument(cmd)
			if err != nil {
				return err
			}
			if title == "" || artist == "" || lyrics == "" {
				return errors.New("title, artist and lyrics are required")
			}

			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()

			recommendations, err := app.pipeline.RecommendSimilar(cmd.Context(), title, artist, lyrics)
			if err != nil {
				return err
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, item := range recommendations.Items {
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", item.Title, item.Artist, item.Year, item.Reason)
			}
			return table.Flush()
		},
	}
}
