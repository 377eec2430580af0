// Package filters provides named single-argument value transformations that
// representer definitions compose into reader chains. A Registry maps filter
// names to functions; chains are resolved by name when a definition is built
// so unknown filters fail early instead of at render time.
package filters
