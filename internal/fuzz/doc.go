// Package fuzztests houses Go fuzz harnesses that push arbitrary lines
// through the lexer, the parser and the simplifier. Their goal is to guard
// against panics, hangs and broken span or fixpoint invariants.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
