// Package animate drives a traversal engine on a clock.
//
// The engine knows nothing about time; Driver owns the cadence. It calls
// Advance once, hands the StepResult to OnStep for rendering, waits one
// Interval, and repeats until the run is Found or Exhausted, Advance fails,
// or the context is cancelled. The first step runs immediately.
//
// Cancelling is just "stop calling Advance": the engine holds no
// goroutines or handles, and an abandoned run is left Running.
//
// Each Run gets a random RunID that tags its log records, so interleaved
// output from Compare (one driver per algorithm, run concurrently) can be
// told apart.
package animate
