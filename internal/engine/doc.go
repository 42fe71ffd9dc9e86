// Package engine composes field resolution and rendering into the single
// generate operation exposed to hosts (CLI, HTTP, MCP).
//
// A request is validated first; a *plan.ValidationError blocks generation
// and no text is produced. Otherwise the request is resolved into a
// plan.MappingPlan and rendered, and both are returned so hosts can surface
// the diagnostics next to the method text.
//
// The engine holds only configuration. Generate may be called concurrently,
// and GenerateAll fans a batch out over a bounded number of workers while
// keeping results in request order.
package engine
