// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Hexagonal Architecture, ports are the boundaries between the application
// core and the outside world. They define what the batch engine needs from
// external systems without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [LigandSource]: Yields discovered work items one at a time
//   - [DockingInvoker]: Runs the external docking tool for one item
//   - [ResultSink]: Commits result rows to the durable score table
//   - [Transcript]: Mirrors raw tool output to the console-output file
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (file system, subprocess, CSV).
//
// This separation enables:
//   - Testing the batch engine with fake tool invocations
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
