// Package diag defines the diagnostic model shared by the rvasm frontend.
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer (and future consumers of its token
//     stream).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt.
//
// Diagnostic is the central record: Severity, Code (compact numeric
// identifier with a stable string form), Message, the primary source.Span,
// and optional Notes. Notes should be used sparingly: each note must add new
// context rather than repeating the diagnostic message.
//
// Producers should emit through a diag.Reporter to decouple emission from
// storage; diag.BagReporter aggregates into a Bag, which supports sorting
// and deduplication for stable output.
package diag
