// Package domain contains the core domain entities and value objects for
// vinascreen.
//
// This package represents the innermost layer of the architecture. It has no
// dependencies on infrastructure concerns (subprocess execution, file system,
// logging) and contains only pure business logic.
//
// # Entities
//
//   - [GridBox]: The six-parameter search region (center + size per axis)
//   - [WorkItem]: A discovered ligand file awaiting docking
//   - [DockingResult]: The tagged outcome of docking one ligand
//   - [ResultRow]: The externally visible unit written to the score table
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
