// Package config loads pathfinder settings from YAML.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default(). Example:
//
//	algorithm: dls
//	depth_limit: 2
//	interval_ms: 150
//	graph:
//	  seed: 7
//	  edges: "A-B,A-C,B-D,C-D,D-E"
//
// Loader adds hot reload on top of Load: Watch follows the file with
// fsnotify and hands each valid revision to the OnChange callbacks.
package config
