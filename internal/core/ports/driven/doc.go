// Package driven defines the interfaces the core depends on but does
// not implement: the fluid property store, the analysis history store
// and the configuration store. Adapters under internal/adapters/driven
// provide the concrete implementations.
package driven
