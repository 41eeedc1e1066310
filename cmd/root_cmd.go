package cmd

import (
	"fmt"
	"os"

	"github.com/dzjyyds666/cfua/parse"
	"github.com/dzjyyds666/cfua/parse/cfua"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "cfua",
	Short:         "cfua reads, checks and formats CFUA configuration files.",
	Long:          "cfua is a tool for CFUA configuration files. It can list or look up values, validate a file and rewrite it in canonical form.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cfua",
	Long:  `All software has versions. This is cfua's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cfua v0.1 -- HEAD")
	},
}

func setupLogger() error {
	if !verbose {
		cfua.SetLogger(zap.NewNop())
		parse.SetLogger(zap.NewNop())
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	cfua.SetLogger(l.Named("cfua"))
	parse.SetLogger(l.Named("parse"))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(checkCmd)
}
