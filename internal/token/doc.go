// Package token defines the lexical categories of symcalc input.
// Invariants:
//   - The Kind catalog is closed; its declaration order is the lexer's
//     tie-break order (later kinds win ties on start and length).
//   - Whitespace and EOL are matched but never emitted; EOF has no pattern
//     and is only synthesized as a zero-width token after the input.
//   - Only Number (parsed value) and Ident (matched text) carry a payload.
package token
