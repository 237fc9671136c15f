package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LesnyRumcajs/wakey"
	"github.com/LesnyRumcajs/wakey/internal/config"
)

// Version is set at build time.
var Version = "dev"

// separators recognized in the positional MAC argument, first match wins.
var separators = []string{":", "-", "/"}

var rootCmd = &cobra.Command{
	Use:   "wakey MAC",
	Short: "Send a Wake-on-LAN magic packet",
	Long: `wakey sends the Wake-on-LAN magic packet for the given hardware address.

The address is a positional argument in one of the formats
AA:BB:CC:DD:EE:FF, AA-BB-CC-DD-EE-FF or AA/BB/CC/DD/EE/FF.

By default the packet is broadcast to 255.255.255.255:9 from an ephemeral
local port. Set WAKEY_DESTINATION or WAKEY_SOURCE to override either
endpoint.`,
	Args: cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE:          runWake,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

func setupLogging() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	output.FormatLevel = func(i interface{}) string {
		if s, ok := i.(string); ok {
			return strings.ToUpper(s)
		}
		return ""
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

func runWake(cmd *cobra.Command, args []string) error {
	mac := args[0]

	sep, err := detectSeparator(mac)
	if err != nil {
		log.Error().Str("mac", mac).Msg("unrecognized address format")
		return err
	}

	packet, err := wakey.NewMagicPacketFromString(mac, sep)
	if err != nil {
		log.Error().Err(err).Str("mac", mac).Msg("invalid hardware address")
		return err
	}

	endpoints, err := config.NewLoader().Load()
	if err != nil {
		log.Error().Err(err).Msg("invalid endpoint configuration")
		return err
	}

	if err := packet.SendTo(endpoints.Source, endpoints.Destination); err != nil {
		log.Error().Err(err).Msg("failed to send the magic packet")
		return err
	}

	log.Info().
		Str("mac", packet.HardwareAddr().String()).
		Str("destination", endpoints.Destination.String()).
		Msg("sent the magic packet")
	return nil
}

func detectSeparator(mac string) (string, error) {
	for _, sep := range separators {
		if strings.Contains(mac, sep) {
			return sep, nil
		}
	}
	return "", fmt.Errorf("no known separator in %q: use one of %v", mac, separators)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
