// Package loader moves transit networks between storage formats and a
// core.Graph.
//
// Record files are the line-oriented, comma-separated text files the network
// is kept in (stations, routes, closures, accidents). Network documents hold
// the same data as a single YAML or TOML file. Both decode into a Network,
// which Apply feeds into a graph through its public API and Capture rebuilds
// from a graph.
//
// Record formats:
//
//	stations   id, name, x, y
//	routes     origin, destination, weight
//	closures   ESTACION, id   |   RUTA, origin, destination   (or bare id / origin, destination)
//	accidents  origin, destination, incrementPercent
//
// Lines starting with '#' or "//" and blank lines are ignored. Malformed lines
// are skipped, counted in Stats and logged at Warn.
package loader
