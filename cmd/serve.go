package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streambinder/lyrika/server"
	syscmd "github.com/streambinder/lyrika/sys/cmd"
	"github.com/streambinder/lyrika/util"
)

func init() {
	cmdRoot.AddCommand(cmdServe())
}

func cmdServe() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the HTTP API",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer app.logger.Destroy()

			if err := syscmd.ValidateEnvironment(); err != nil {
				app.logger.WithError(err).Warn("samples will not be transcoded")
			}

			serverConfig := app.config.GetServerConfig()
			if port := util.ErrWrap(0)(cmd.Flags().GetInt("port")); port > 0 {
				serverConfig.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(app.pipeline, serverConfig, app.status, app.logger.Component("server")).Start(ctx)
		},
	}
	cmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides configuration)")
	return cmd
}
