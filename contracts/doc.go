// Package contracts defines the shared data contracts used across the
// SupportFlow and CareFlow applications: audit events, cost tracking
// records, and governance log entries.
//
// Records are value objects. They are constructed once from a field map,
// validated at that boundary, and never mutated afterwards. ToMap returns
// the exact inverse of construction so records can round-trip through the
// downstream audit pipeline.
package contracts
