// Package metrics counts traversal steps and run outcomes with Prometheus
// collectors held in a private registry.
//
// What
//
//   - pathfinder_steps_total{algorithm}: one increment per Advance.
//   - pathfinder_runs_total{algorithm,outcome}: outcome is the final
//     RunState name, "cancelled" or "error".
//   - pathfinder_run_duration_seconds{algorithm}: wall-clock time per run.
//
// *Metrics satisfies animate.Recorder. The CLI has no HTTP server, so
// WriteTextfile dumps the registry in the node-exporter textfile format;
// Gatherer exposes the same registry to a caller that serves or inspects it.
package metrics
