// Package driven defines the outbound port interfaces the core services
// depend on: corpus loading, intent classification, and chat log storage.
// Adapters implement these interfaces.
package driven
