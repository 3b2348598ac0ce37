package shared

import (
	"fmt"
	"strings"
)

// BuildingType identifies something a province can have built in it
type BuildingType string

const (
	BuildingCiv       BuildingType = "CIV"
	BuildingMil       BuildingType = "MIL"
	BuildingInfra     BuildingType = "INFRA"
	BuildingDockyard  BuildingType = "DOCKYARD"
	BuildingAirfield  BuildingType = "AIRFIELD"
	BuildingArmyRF    BuildingType = "ARMY_RF"
	BuildingNavalRF   BuildingType = "NAVAL_RF"
	BuildingAerialRF  BuildingType = "AERIAL_RF"
	BuildingNuclearRF BuildingType = "NUCLEAR_RF"
)

// AllBuildingTypes lists every building type in display order
var AllBuildingTypes = []BuildingType{
	BuildingCiv,
	BuildingMil,
	BuildingInfra,
	BuildingDockyard,
	BuildingAirfield,
	BuildingArmyRF,
	BuildingNavalRF,
	BuildingAerialRF,
	BuildingNuclearRF,
}

// IsValid reports whether b is one of the known building types
func (b BuildingType) IsValid() bool {
	for _, known := range AllBuildingTypes {
		if b == known {
			return true
		}
	}
	return false
}

// IsResearchFacility reports whether b is one of the single-instance research facilities
func (b BuildingType) IsResearchFacility() bool {
	switch b {
	case BuildingArmyRF, BuildingNavalRF, BuildingAerialRF, BuildingNuclearRF:
		return true
	}
	return false
}

func (b BuildingType) String() string {
	return string(b)
}

// ParseBuildingType accepts the canonical name in any case, plus a few short aliases
func ParseBuildingType(s string) (BuildingType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case "CIVILIAN", "CIVILIAN_FACTORY":
		return BuildingCiv, nil
	case "MILITARY", "MILITARY_FACTORY":
		return BuildingMil, nil
	case "INFRASTRUCTURE":
		return BuildingInfra, nil
	}

	b := BuildingType(normalized)
	if !b.IsValid() {
		return "", NewValidationError("building", fmt.Sprintf("unknown building type %q", s))
	}
	return b, nil
}
