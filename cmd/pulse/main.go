package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pulse/internal/cfg"
	"pulse/internal/initdata"
	"pulse/internal/logx"
	"pulse/internal/tg"
	"pulse/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("pulse")
		os.Exit(1)
	}
}

type app struct {
	config cfg.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pulse",
		Short:         "Pulse mini-app backend: launch payload validation and companion bot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.config = cfg.Load()
			logx.Setup(cmd.ErrOrStderr(), a.config.LogLevel, a.config.LogPretty)
		},
	}
	root.AddCommand(a.serveCmd(), a.botCmd(), a.linkCmd(), a.verifyCmd(), a.signCmd())
	return root
}

func (a *app) verifier() *initdata.Verifier {
	return initdata.NewVerifier(a.config.BotToken, initdata.WithMaxAge(a.config.InitDataMaxAge))
}

func (a *app) bot() *tg.Bot {
	return tg.NewBot(a.config.BotToken, tg.Links{
		Host:     a.config.LinkHost,
		BotName:  a.config.BotName,
		AppLabel: a.config.AppLabel,
	})
}

func (a *app) serveCmd() *cobra.Command {
	var noBot bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the companion bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.BotToken == "" {
				log.Warn().Msg("BOT_TOKEN empty: every initData check will be rejected")
			}
			srv := web.NewServer(a.verifier(), a.config.WebAddr, a.config.MaxInitDataBytes)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return srv.Serve(ctx) })
			if !noBot {
				g.Go(func() error { return a.bot().Run(ctx) })
			}
			err := g.Wait()
			if err != nil {
				log.Error().Err(err).Msg("serve stopped")
			}
			log.Info().Msg("shutdown")
			return err
		},
	}
	cmd.Flags().BoolVar(&noBot, "no-bot", false, "do not start the companion bot")
	return cmd
}

func (a *app) botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run only the companion bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.bot().Run(cmd.Context())
		},
	}
}
