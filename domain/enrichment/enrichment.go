// Package enrichment provides domain types for derived joke metadata.
package enrichment

// Result is the opaque payload produced by one enricher for one record.
// It is keyed in the record's enrichment envelope by the enricher's declared
// name. Producing a Result is a pure function of the record's text: the same
// enricher applied to the same record always yields an identical Result.
type Result map[string]any
