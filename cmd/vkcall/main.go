// Command vkcall calls VK API methods from the command line.
//
// Usage:
//
//	vkcall call users.get user_ids=1 fields=city,photo_100
//	vkcall call utils.getServerTime --query @this
//	vkcall batch calls.txt --keep-going
//
// The access token comes from --token, from the VK_ACCESS_TOKEN environment
// variable, or from the access_token field of the --config file.
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vkbind/vk/internal/version"
)

// Options contains the options you can set from the CLI.
type Options struct {
	APIVersion     string
	BaseURL        string
	ConfigFile     string
	KeepGoing      bool
	Lang           string
	Proxy          string
	Query          string
	TimeoutSeconds int64
	Token          string
	Verbose        bool
}

// main is the main function of vkcall.
func main() {
	rootCmd := newRootCommand(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the vkcall command writing results to stdout
// and logs and errors to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:           "vkcall",
		Short:         "vkcall calls VK API methods",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	flags := rootCmd.PersistentFlags()

	flags.StringVar(
		&globalOptions.APIVersion,
		"api-version",
		"",
		"VK API version to send as the v parameter (default: config or \"5.199\")",
	)

	flags.StringVar(
		&globalOptions.BaseURL,
		"base-url",
		"",
		"base URL of the VK API (default: config or \"https://api.vk.com/method/\")",
	)

	flags.StringVarP(
		&globalOptions.ConfigFile,
		"config",
		"c",
		"",
		"path to the JSON configuration file (comments and trailing commas allowed)",
	)

	flags.StringVar(
		&globalOptions.Lang,
		"lang",
		"",
		"language to send as the lang parameter",
	)

	flags.StringVar(
		&globalOptions.Proxy,
		"proxy",
		"",
		"proxy URL to use (one of: http://, https://, socks5://)",
	)

	flags.Int64Var(
		&globalOptions.TimeoutSeconds,
		"timeout",
		0,
		"timeout in seconds for each call (default: config or 30)",
	)

	flags.StringVarP(
		&globalOptions.Token,
		"token",
		"t",
		"",
		"VK access token",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	registerCall(rootCmd, &globalOptions)
	registerBatch(rootCmd, &globalOptions)
	return rootCmd
}

// registerCall registers the call subcommand
func registerCall(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "call METHOD [NAME=VALUE...]",
		Short: "Calls a single method and prints the response as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, runCall(cmd, globalOptions, args[0], args[1:]))
		},
	}
	rootCmd.AddCommand(subCmd)
	subCmd.Flags().StringVarP(
		&globalOptions.Query,
		"query",
		"q",
		"",
		"print only the part of the response matching this GJSON path",
	)
}

// registerBatch registers the batch subcommand
func registerBatch(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Calls the methods listed in FILE, one per line, and prints one response per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reportError(cmd, runBatch(cmd, globalOptions, args[0]))
		},
	}
	rootCmd.AddCommand(subCmd)
	subCmd.Flags().BoolVarP(
		&globalOptions.KeepGoing,
		"keep-going",
		"k",
		false,
		"continue after a failed call",
	)
}

// reportError prints err, if any, and returns it.
func reportError(cmd *cobra.Command, err error) error {
	if err != nil {
		red := color.New(color.FgRed)
		cmd.PrintErrf("%s %s\n", red.Sprint("Error:"), err.Error())
	}
	return err
}
