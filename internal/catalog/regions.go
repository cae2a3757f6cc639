package catalog

import (
	"fmt"
	"strings"

	"github.com/magician360/opportunity-engine/internal/types"
)

// RegionalData is the static reference record for one Texas region.
type RegionalData struct {
	Region                    types.TexasRegion
	PrimaryIndustries         []string
	WorkforceStrengths        []string
	SBAOffice                 string
	OpportunityZones          int
	KeyPrograms               []string
	WorkforceSolutionsOffices []string
}

// regionalData is the static lookup table for all twelve regions.
// Every opportunity region must have an entry here; Verify enforces it.
var regionalData = map[types.TexasRegion]RegionalData{
	types.RegionDallasFortWorth: {
		Region:                    types.RegionDallasFortWorth,
		PrimaryIndustries:         []string{"Technology", "Telecommunications", "Finance", "Defense", "Logistics"},
		WorkforceStrengths:        []string{"Professional Services", "Healthcare", "Education"},
		SBAOffice:                 "Dallas/Fort Worth Branch Office",
		OpportunityZones:          92,
		KeyPrograms:               []string{"Texas Enterprise Fund", "Skills Development Fund"},
		WorkforceSolutionsOffices: []string{"North Central Texas", "Tarrant County", "Dallas County"},
	},
	types.RegionHouston: {
		Region:                    types.RegionHouston,
		PrimaryIndustries:         []string{"Energy", "Petrochemicals", "Aerospace", "Healthcare", "International Trade"},
		WorkforceStrengths:        []string{"Engineering", "Medical Services", "Port Operations"},
		SBAOffice:                 "Houston District Office",
		OpportunityZones:          69,
		KeyPrograms:               []string{"Port-related Training", "Energy Sector Apprenticeships"},
		WorkforceSolutionsOffices: []string{"Gulf Coast", "Houston-Galveston"},
	},
	types.RegionSanAntonio: {
		Region:                    types.RegionSanAntonio,
		PrimaryIndustries:         []string{"Military", "Cybersecurity", "Healthcare", "Tourism", "Biosciences"},
		WorkforceStrengths:        []string{"Military Transition", "Hospitality", "Medical Technology"},
		SBAOffice:                 "San Antonio District Office",
		OpportunityZones:          44,
		KeyPrograms:               []string{"Military Spouse Employment", "SkillBridge"},
		WorkforceSolutionsOffices: []string{"Alamo", "Bexar County"},
	},
	types.RegionAustin: {
		Region:                    types.RegionAustin,
		PrimaryIndustries:         []string{"Technology", "Semiconductors", "Biotechnology", "Creative Industries"},
		WorkforceStrengths:        []string{"Software Development", "Engineering", "Creative Services"},
		SBAOffice:                 "Central Texas SBDC",
		OpportunityZones:          29,
		KeyPrograms:               []string{"Tech Startup Support", "Creative Economy"},
		WorkforceSolutionsOffices: []string{"Capital Area", "Rural Capital"},
	},
	types.RegionElPaso: {
		Region:                    types.RegionElPaso,
		PrimaryIndustries:         []string{"International Trade", "Manufacturing", "Logistics", "Call Centers"},
		WorkforceStrengths:        []string{"Bilingual Services", "Cross-border Commerce"},
		SBAOffice:                 "El Paso Branch Office",
		OpportunityZones:          28,
		KeyPrograms:               []string{"USMCA Trade Support", "Binational Workforce Development"},
		WorkforceSolutionsOffices: []string{"Upper Rio Grande"},
	},
	types.RegionRioGrandeValley: {
		Region:                    types.RegionRioGrandeValley,
		PrimaryIndustries:         []string{"Agriculture", "Manufacturing", "Healthcare", "International Trade"},
		WorkforceStrengths:        []string{"Agricultural Technology", "Manufacturing", "Bilingual Services"},
		SBAOffice:                 "Lower Rio Grande Valley SBDC",
		OpportunityZones:          44,
		KeyPrograms:               []string{"Colonias Initiatives", "Agricultural Development"},
		WorkforceSolutionsOffices: []string{"Lower Rio Grande Valley", "Cameron County"},
	},
	types.RegionPermianBasin: {
		Region:                    types.RegionPermianBasin,
		PrimaryIndustries:         []string{"Oil and Gas", "Energy Services"},
		WorkforceStrengths:        []string{"Energy Sector", "Equipment Operation", "Logistics"},
		SBAOffice:                 "Midland SBDC",
		OpportunityZones:          15,
		KeyPrograms:               []string{"Energy-focused Training", "Diversification Initiatives"},
		WorkforceSolutionsOffices: []string{"Permian Basin"},
	},
	types.RegionGulfCoast: {
		Region:                    types.RegionGulfCoast,
		PrimaryIndustries:         []string{"Petrochemicals", "Shipping", "Tourism", "Fishing"},
		WorkforceStrengths:        []string{"Maritime", "Hospitality", "Manufacturing"},
		SBAOffice:                 "Houston District Office",
		OpportunityZones:          25,
		KeyPrograms:               []string{"Maritime Training", "Coastal Tourism"},
		WorkforceSolutionsOffices: []string{"Gulf Coast", "Coastal Bend"},
	},
	types.RegionPanhandle: {
		Region:                    types.RegionPanhandle,
		PrimaryIndustries:         []string{"Agriculture", "Wind Energy", "Cattle Ranching"},
		WorkforceStrengths:        []string{"Agricultural Services", "Renewable Energy"},
		SBAOffice:                 "Lubbock Branch Office",
		OpportunityZones:          12,
		KeyPrograms:               []string{"Rural Development", "Agricultural Innovation"},
		WorkforceSolutionsOffices: []string{"Panhandle", "South Plains"},
	},
	types.RegionEastTexas: {
		Region:                    types.RegionEastTexas,
		PrimaryIndustries:         []string{"Timber", "Manufacturing", "Healthcare"},
		WorkforceStrengths:        []string{"Forestry", "Rural Healthcare"},
		SBAOffice:                 "East Texas SBDC",
		OpportunityZones:          18,
		KeyPrograms:               []string{"Rural Healthcare", "Timber Industry Support"},
		WorkforceSolutionsOffices: []string{"East Texas", "Northeast Texas"},
	},
	types.RegionCentralTexas: {
		Region:                    types.RegionCentralTexas,
		PrimaryIndustries:         []string{"Government", "Education", "Technology", "Healthcare"},
		WorkforceStrengths:        []string{"Public Service", "Education", "Technology"},
		SBAOffice:                 "Central Texas SBDC",
		OpportunityZones:          35,
		KeyPrograms:               []string{"Government Contracting", "Education Services"},
		WorkforceSolutionsOffices: []string{"Capital Area", "Central Texas", "Heart of Texas"},
	},
	types.RegionWestTexas: {
		Region:                    types.RegionWestTexas,
		PrimaryIndustries:         []string{"Agriculture", "Tourism", "Border Trade"},
		WorkforceStrengths:        []string{"Ranching", "Hospitality", "Bilingual Services"},
		SBAOffice:                 "West Texas SBDC",
		OpportunityZones:          20,
		KeyPrograms:               []string{"Rural Enterprise", "Border Commerce"},
		WorkforceSolutionsOffices: []string{"West Texas", "Concho Valley"},
	},
}

// Regions returns all known regions in no particular order.
func Regions() []types.TexasRegion {
	regions := make([]types.TexasRegion, 0, len(regionalData))
	for region := range regionalData {
		regions = append(regions, region)
	}
	return regions
}

// RegionData returns the reference record for a region. The second
// return is false when the region is not in the table.
func RegionData(region types.TexasRegion) (RegionalData, bool) {
	data, ok := regionalData[region]
	return data, ok
}

// RegionalResources renders the human-readable resource summary for a
// region: SBA office, workforce offices, zone count, and key programs.
func RegionalResources(region types.TexasRegion) []string {
	data, ok := regionalData[region]
	if !ok {
		return nil
	}
	return []string{
		"SBA Office: " + data.SBAOffice,
		"Workforce Solutions: " + strings.Join(data.WorkforceSolutionsOffices, ", "),
		fmt.Sprintf("Opportunity Zones: %d designated areas", data.OpportunityZones),
		"Key Programs: " + strings.Join(data.KeyPrograms, ", "),
	}
}
