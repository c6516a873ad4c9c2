package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "dazzleswitch",
	Short: "DazzleSwitch input router",
	Long:  "DazzleSwitch resolves which of several optional inputs a switch node routes to its output.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug logging")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	_ = godotenv.Load()
	viper.SetEnvPrefix("DAZZLE")
	viper.AutomaticEnv()
}

// newLogger returns the diagnostic logger: silent unless --debug or
// DAZZLE_DEBUG is set.
func newLogger() zerolog.Logger {
	if !viper.GetBool("debug") {
		return zerolog.Nop()
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return zerolog.New(output).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
