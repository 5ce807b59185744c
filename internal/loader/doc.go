// Package loader resolves drill targets that are not bundled with a chart.
//
// Targets are read from a directory of YAML series files, one file per target
// id. Results are kept in a TTL-bounded JSON file cache so repeated drills do
// not touch the source, and Prefetch warms the cache for several targets at
// once.
package loader
