package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"snb-go/core"
	"snb-go/social"
)

var (
	configPath string
	dryRun     bool
	debug      bool
	targetUser string
)

func newClient(cmd *cobra.Command) (*Client, error) {
	var wrapper core.WebWrapperInterface
	if dryRun {
		log.Info().Msg("running in dry-run mode")
		wrapper = social.NewMockWebWrapper()
	}
	return NewClient(cmd.Context(), configPath, nil, wrapper)
}

func printResult(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseToggle(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return strconv.ParseBool(arg)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "snb",
		Short: "Issue profile and reaction mutations over a logged-in web session",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "use a mock transport instead of the real platform")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	guardCmd := &cobra.Command{
		Use:   "guard on|off",
		Short: "Toggle profile-picture download protection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseToggle(args[0])
			if err != nil {
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.Profiles.Guard(cmd.Context(), enable, targetUser)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	guardCmd.Flags().StringVar(&targetUser, "user", "", "target user id (defaults to the session user)")

	lockCmd := &cobra.Command{
		Use:   "lock on|off",
		Short: "Toggle friends-only profile locking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enable, err := parseToggle(args[0])
			if err != nil {
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.Profiles.Lock(cmd.Context(), enable, targetUser)
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}
	lockCmd.Flags().StringVar(&targetUser, "user", "", "target user id (defaults to the session user)")

	reactCmd := &cobra.Command{
		Use:   "react <postID> <reaction>",
		Short: "Set or clear a reaction on a post (NONE clears)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			result, err := client.Reactions.React(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printResult(result)
		},
	}

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Discard the cached session snapshot and log in again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			if err := client.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("session refreshed for user %s\n", client.Session.UserID)
			return nil
		},
	}

	rootCmd.AddCommand(guardCmd, lockCmd, reactCmd, refreshCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
