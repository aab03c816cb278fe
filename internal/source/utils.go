package source

import (
	"strings"
)

// NormalizeInput strips a UTF-8 BOM and replaces CRLF with LF.
// Возвращает флаг: был ли вход изменён.
func NormalizeInput(text string) (string, bool) {
	changed := false
	if strings.HasPrefix(text, "\uFEFF") {
		text = strings.TrimPrefix(text, "\uFEFF")
		changed = true
	}
	// Быстрый путь: если нет \r, возвращаем как есть.
	if !strings.Contains(text, "\r\n") {
		return text, changed
	}
	return strings.ReplaceAll(text, "\r\n", "\n"), true
}

// Line returns the 1-based line n of text without its terminator.
// Если строки нет, возвращает пустую строку.
func Line(text string, n uint32) string {
	if n == 0 {
		return ""
	}
	for i := uint32(1); ; i++ {
		nl := strings.IndexByte(text, '\n')
		if i == n {
			if nl < 0 {
				return text
			}
			return text[:nl]
		}
		if nl < 0 {
			return ""
		}
		text = text[nl+1:]
	}
}
