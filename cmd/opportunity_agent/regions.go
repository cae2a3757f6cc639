package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/observability"
	"github.com/magician360/opportunity-engine/internal/types"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List Texas regions and their support resources",
	Long:  "Lists the known Texas regions, or with --region prints the support resources (industries, SBA office, key programs, workforce offices) for one region.",
	RunE:  runRegions,
}

var regionsRegion string

func init() {
	regionsCmd.Flags().StringVarP(&regionsRegion, "region", "r", "", "Region to show resources for (omit to list all regions)")
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(_ *cobra.Command, _ []string) error {
	if regionsRegion == "" {
		regions := catalog.Regions()
		sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
		for _, region := range regions {
			_, _ = fmt.Fprintln(os.Stdout, region)
		}
		return nil
	}

	region := types.TexasRegion(regionsRegion)
	resources := catalog.RegionalResources(region)
	if resources == nil {
		return fmt.Errorf("region not found: %s", regionsRegion)
	}

	observability.NewPrinter(os.Stdout).PrintRegionalResources(region, resources)
	return nil
}
