package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/luxfi/logo"
	"github.com/luxfi/logo/utils"
	"github.com/spf13/cobra"
)

const helpBanner = `
▽ LUX

Lux logo builder.
    Version: %s

`

// outputDir is where the assets are generated, relative to the working directory.
const outputDir = "dist"

// Version indicates the current build version.
var Version = "dev"

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	deco := utils.NewDecorator(os.Stderr)

	root := &cobra.Command{
		Use:           "luxlogo",
		Short:         "Generate the Lux logo icon set",
		Long:          fmt.Sprintf(helpBanner, Version),
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(os.Stderr, helpBanner, Version)

			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           log.InfoLevel,
			})

			now := time.Now()
			b := &logo.Builder{Dir: outputDir, Logger: logger}
			report, err := b.Build(cmd.Context())
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %s\n",
					deco.Text("Error generating the icons:", utils.ErrorMessage),
					deco.Text(err.Error(), utils.DefaultMessage),
				)
				return err
			}

			fmt.Fprintf(os.Stderr, "\n%s %d icons and %d vector sources in %s\n",
				deco.Text("✅ Build complete!", utils.SuccessMessage),
				len(report.Icons), len(report.Sources),
				deco.Text(utils.FormatTime(time.Since(now)), utils.StatusMessage),
			)
			return nil
		},
	}
	root.SetVersionTemplate("luxlogo {{.Version}}\n")

	return root
}
