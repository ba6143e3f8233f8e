package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/lcikit/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var config app.Config

	rootCmd := &cobra.Command{
		Use:   "lcikit",
		Short: "Wi-Fi location subelement encoder",
		Long: `Encodes the location subelements an access point advertises: geodetic LCI,
Z (floor and height), usage rules, co-located BSSIDs, civic address and map image.

Example usage:
  lcikit encode --site site.yaml --dump
  lcikit encode --site site.yaml --archive ./out --compression zstd
  lcikit tables civic`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion(cmd.OutOrStdout())
				return nil
			}

			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode the reports described by a site file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApplication(cmd, config).Encode()
		},
	}
	encodeCmd.Flags().StringVarP(&config.SiteFile, "site", "s", app.DefaultSiteFile, "YAML site file")
	encodeCmd.Flags().BoolVarP(&config.Legacy, "legacy", "l", false, "Use the legacy Z status byte layout")
	encodeCmd.Flags().BoolVarP(&config.Dump, "dump", "d", false, "Print a spaced hex dump instead of compact hex")
	encodeCmd.Flags().StringVarP(&config.ArchivePath, "archive", "a", "", "Directory to write packed report archives to")
	encodeCmd.Flags().StringVarP(&config.Compression, "compression", "c", app.DefaultCompression, "Archive compression: none, zstd, s2 or lz4")

	unpackCmd := &cobra.Command{
		Use:   "unpack <archive>",
		Short: "Print the report stored in a packed archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApplication(cmd, config).Unpack(args[0])
		},
	}
	unpackCmd.Flags().BoolVarP(&config.Dump, "dump", "d", false, "Print a spaced hex dump instead of compact hex")

	tablesCmd := &cobra.Command{
		Use:       "tables <language|country|civic|image|datum>",
		Short:     "List a code table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"language", "country", "civic", "image", "datum"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApplication(cmd, config).ListTable(args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.ShowVersion(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(encodeCmd, unpackCmd, tablesCmd, versionCmd)

	return rootCmd
}

func newApplication(cmd *cobra.Command, config app.Config) *app.Application {
	application := app.NewApplication(config)
	application.SetOutput(cmd.OutOrStdout())
	application.Logger().SetOutput(cmd.ErrOrStderr())

	return application
}
