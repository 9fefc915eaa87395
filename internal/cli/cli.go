package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/enea-outages/internal/config"
	"github.com/pfrederiksen/enea-outages/internal/logger"
	"github.com/pfrederiksen/enea-outages/internal/outage"
	"github.com/pfrederiksen/enea-outages/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagType        string
	flagRegion      string
	flagAddress     string
	flagListRegions bool
	flagFormat      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enea-outages",
		Short: "Check Enea Operator power-outage notices",
		Long: `A CLI tool to check power-outage notices published by Enea Operator.
Fetches planned or unplanned outage listings for a region, optionally
filtered to an address, and can list the available regions (oddziały).`,
		SilenceUsage: true,
		RunE:         runCheck,
	}

	cmd.Flags().StringVar(&flagType, "type", string(outage.TypeUnplanned), "Outage type: planned or unplanned")
	cmd.Flags().StringVar(&flagRegion, "region", "", "Region (oddział) to check; defaults to the configured region")
	cmd.Flags().StringVar(&flagAddress, "address", "", "Street or address to filter outage descriptions by")
	cmd.Flags().BoolVar(&flagListRegions, "list-regions", false, "List available regions and exit")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	sc := scraper.NewWithConfig(cfg)

	if flagListRegions {
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Fetching available regions from %s\n", cfg.BaseURL)
		}

		regions, err := sc.FetchRegions()
		if err != nil {
			return fmt.Errorf("fetching regions: %w", err)
		}

		result := &OutputResult{
			CheckedAt: time.Now().UTC(),
			Regions:   regions,
		}
		return WriteOutput(cmd.OutOrStdout(), result, format)
	}

	typ, err := outage.ParseType(flagType)
	if err != nil {
		return err
	}

	region := strings.TrimSpace(flagRegion)
	if region == "" {
		region = sc.DefaultRegion()
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetching %s outages for region %s\n", typ, region)
	}

	var outages []*outage.Outage
	if flagAddress != "" {
		outages, err = sc.FetchOutagesForAddress(flagAddress, region, typ)
	} else {
		outages, err = sc.FetchOutages(region, typ)
	}
	if err != nil {
		return fmt.Errorf("fetching outages: %w", err)
	}

	result := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		Region:      region,
		Type:        typ,
		Address:     flagAddress,
		Outages:     outages,
		OutageCount: len(outages),
	}
	return WriteOutput(cmd.OutOrStdout(), result, format)
}
