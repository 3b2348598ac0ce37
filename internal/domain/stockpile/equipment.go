package stockpile

import (
	"fmt"
	"math"

	"github.com/andrescamacho/nationsim-go/internal/domain/shared"
)

// EquipmentStockpile counts manufactured equipment. Counters never decrease.
type EquipmentStockpile struct {
	guns      int64
	artillery int64
	antiAir   int64
	cas       int64
}

func NewEquipmentStockpile() *EquipmentStockpile {
	return &EquipmentStockpile{}
}

func (e EquipmentStockpile) Guns() int64      { return e.guns }
func (e EquipmentStockpile) Artillery() int64 { return e.artillery }
func (e EquipmentStockpile) AntiAir() int64   { return e.antiAir }
func (e EquipmentStockpile) CAS() int64       { return e.cas }

func (e *EquipmentStockpile) AddGuns(n int64)      { addPositive(&e.guns, n) }
func (e *EquipmentStockpile) AddArtillery(n int64) { addPositive(&e.artillery, n) }
func (e *EquipmentStockpile) AddAntiAir(n int64)   { addPositive(&e.antiAir, n) }
func (e *EquipmentStockpile) AddCAS(n int64)       { addPositive(&e.cas, n) }

// Add routes n to the counter for t. Unknown types are ignored.
func (e *EquipmentStockpile) Add(t shared.EquipmentType, n int64) {
	switch t {
	case shared.EquipmentGun:
		e.AddGuns(n)
	case shared.EquipmentArtillery:
		e.AddArtillery(n)
	case shared.EquipmentAntiAir:
		e.AddAntiAir(n)
	case shared.EquipmentCAS:
		e.AddCAS(n)
	}
}

// Count returns the counter for t, or 0 for an unknown type
func (e EquipmentStockpile) Count(t shared.EquipmentType) int64 {
	switch t {
	case shared.EquipmentGun:
		return e.guns
	case shared.EquipmentArtillery:
		return e.artillery
	case shared.EquipmentAntiAir:
		return e.antiAir
	case shared.EquipmentCAS:
		return e.cas
	}
	return 0
}

func (e EquipmentStockpile) String() string {
	return fmt.Sprintf("Guns: %d, Artillery: %d, Anti-Air: %d, CAS: %d", e.guns, e.artillery, e.antiAir, e.cas)
}

// addPositive saturates at math.MaxInt64 so a counter can never wrap
func addPositive(counter *int64, n int64) {
	if n <= 0 {
		return
	}
	if *counter > math.MaxInt64-n {
		*counter = math.MaxInt64
		return
	}
	*counter += n
}
