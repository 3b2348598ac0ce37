package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Construction errors

type InvalidProvinceIndexError struct {
	*DomainError
	Index         int
	ProvinceCount int
}

func NewInvalidProvinceIndexError(index, provinceCount int) *InvalidProvinceIndexError {
	return &InvalidProvinceIndexError{
		DomainError:   NewDomainError(fmt.Sprintf("invalid province index %d (nation has %d provinces)", index, provinceCount)),
		Index:         index,
		ProvinceCount: provinceCount,
	}
}

type InvalidConstructionCountError struct {
	*DomainError
	Count int
}

func NewInvalidConstructionCountError(count int) *InvalidConstructionCountError {
	return &InvalidConstructionCountError{
		DomainError: NewDomainError(fmt.Sprintf("invalid construction count %d", count)),
		Count:       count,
	}
}

// CapacityExceededError reports that built + queued + requested would pass the
// per-province ceiling for a building type.
type CapacityExceededError struct {
	*DomainError
	Building      BuildingType
	ProvinceIndex int
	Built         int
	Queued        int
	Requested     int
	Ceiling       int
}

func NewCapacityExceededError(building BuildingType, provinceIndex, built, queued, requested, ceiling int) *CapacityExceededError {
	return &CapacityExceededError{
		DomainError: NewDomainError(fmt.Sprintf(
			"cannot queue %d %s in province %d: %d built + %d queued exceeds ceiling %d",
			requested, building, provinceIndex, built, queued, ceiling,
		)),
		Building:      building,
		ProvinceIndex: provinceIndex,
		Built:         built,
		Queued:        queued,
		Requested:     requested,
		Ceiling:       ceiling,
	}
}

// Production errors

type FactoryOvercommitError struct {
	*DomainError
	Requested int
	Committed int
	Available int
}

func NewFactoryOvercommitError(requested, committed, available int) *FactoryOvercommitError {
	return &FactoryOvercommitError{
		DomainError: NewDomainError(fmt.Sprintf(
			"not enough military factories: requested %d, %d already assigned, %d total",
			requested, committed, available,
		)),
		Requested: requested,
		Committed: committed,
		Available: available,
	}
}

type InvalidProductionLineIndexError struct {
	*DomainError
	Index     int
	LineCount int
}

func NewInvalidProductionLineIndexError(index, lineCount int) *InvalidProductionLineIndexError {
	return &InvalidProductionLineIndexError{
		DomainError: NewDomainError(fmt.Sprintf("invalid production line index %d (nation has %d lines)", index, lineCount)),
		Index:       index,
		LineCount:   lineCount,
	}
}
