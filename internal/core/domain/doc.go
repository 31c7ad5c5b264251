// Package domain contains the core business entities for WanderStay:
// intent records, training examples, and chat log entries. It has no
// dependencies on adapters or external services.
package domain
