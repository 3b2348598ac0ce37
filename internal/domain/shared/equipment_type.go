package shared

import (
	"fmt"
	"strings"
)

// EquipmentType identifies a kind of manufactured military equipment
type EquipmentType string

const (
	EquipmentGun       EquipmentType = "GUN"
	EquipmentArtillery EquipmentType = "ARTILLERY"
	EquipmentAntiAir   EquipmentType = "ANTI_AIR"
	EquipmentCAS       EquipmentType = "CAS"
)

var AllEquipmentTypes = []EquipmentType{
	EquipmentGun,
	EquipmentArtillery,
	EquipmentAntiAir,
	EquipmentCAS,
}

func (e EquipmentType) IsValid() bool {
	switch e {
	case EquipmentGun, EquipmentArtillery, EquipmentAntiAir, EquipmentCAS:
		return true
	}
	return false
}

func (e EquipmentType) String() string {
	return string(e)
}

// ParseEquipmentType accepts the canonical name in any case ("anti-air" and "antiair" included)
func ParseEquipmentType(s string) (EquipmentType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch normalized {
	case "GUNS", "INFANTRY_EQUIPMENT":
		return EquipmentGun, nil
	case "ANTIAIR", "AA":
		return EquipmentAntiAir, nil
	}

	e := EquipmentType(normalized)
	if !e.IsValid() {
		return "", NewValidationError("equipment", fmt.Sprintf("unknown equipment type %q", s))
	}
	return e, nil
}
