package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"pulse/internal/deeplink"
	"pulse/internal/initdata"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (a *app) linkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "link [payload]",
		Short: "Print the startapp deep link for a payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := ""
			if len(args) == 1 {
				payload = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), deeplink.StartAppLink(a.config.LinkHost, a.config.BotName, payload))
			// A bare link carries no startapp value, so there is nothing to classify.
			if payload == "" {
				return nil
			}
			lc := deeplink.Parse(deeplink.Sanitize(payload))
			fmt.Fprintf(cmd.ErrOrStderr(), "mode=%s label=%q\n", lc.Mode, lc.Label)
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <initData>",
		Short: "Verify a launch payload with the configured bot token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.verifier().Verify(args[0])
			if err != nil {
				return fmt.Errorf("rejected: %s", initdata.Reason(err))
			}
			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func (a *app) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign key=value...",
		Short: "Print a signed launch payload (development helper)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := make(map[string]string, len(args))
			for _, arg := range args {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || k == "" {
					return fmt.Errorf("bad field %q, want key=value", arg)
				}
				fields[k] = v
			}
			raw, err := initdata.Build(fields, a.config.BotToken, time.Now())
			if errors.Is(err, initdata.ErrMissingBotToken) {
				return errors.New("BOT_TOKEN is required to sign")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), raw)
			return nil
		},
	}
}
