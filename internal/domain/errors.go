package domain

import "errors"

// Domain errors represent error conditions in the vinascreen domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrLigandDirMissing is returned when the input ligand directory does
	// not exist. No work can proceed, so this aborts the whole batch.
	ErrLigandDirMissing = errors.New("vinascreen: ligand directory does not exist")

	// ErrInvalidGrid is returned when grid box validation fails.
	ErrInvalidGrid = errors.New("vinascreen: invalid grid box")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("vinascreen: invalid configuration")
)
