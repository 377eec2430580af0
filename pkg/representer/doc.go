// Package representer implements a read-only proxy between a domain model and
// its rendered view. A Definition is built once per representer type and holds
// its registration table: declared model readers (optionally piped through
// named filter chains), declared controller methods, and template helpers.
// Representer instances pair the definition with a model and the active
// request controller for a single render and resolve template paths by naming
// convention.
package representer
