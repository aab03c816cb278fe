// Package diag defines the diagnostic model shared by all pipeline stages.
//
// # Purpose
//
//   - Give lexer / parser / lowering / simplifier one deterministic record
//     for user-input problems: Diagnostic.
//   - Let stages fail fast with a plain Go error (*Diagnostic implements
//     error) while the driver collects everything into a Bag.
//
// # Scope
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
//   - Severity – Info, Warning, Error.
//   - Code – compact numeric identifier with a stable string form (LEX1001).
//   - Message – short, human oriented text.
//   - Primary – the source.Span of the offending token or construct.
//   - Notes – optional secondary spans with extra context.
//
// Internal invariant violations are not diagnostics; they panic.
package diag
