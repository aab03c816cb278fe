package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynExpectExpression Code = 2002
	SynExpectRParen     Code = 2003
	SynExpectRBracket   Code = 2004
	SynExpectCallArgs   Code = 2005

	// Понижение syntax tree -> expression tree
	LowInfo            Code = 3000
	LowInvalidCall     Code = 3001
	LowUnknownFunction Code = 3002

	// Упрощение
	SimInfo        Code = 4000
	SimUnsupported Code = 4001

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		LexInfo:             "Lexical information",
		LexUnknownChar:      "Unknown character",
		SynInfo:             "Syntax information",
		SynUnexpectedToken:  "Unexpected token",
		SynExpectExpression: "Expected expression",
		SynExpectRParen:     "Expected ')'",
		SynExpectRBracket:   "Expected ']'",
		SynExpectCallArgs:   "Expected argument list",
		LowInfo:             "Lowering information",
		LowInvalidCall:      "Invalid call",
		LowUnknownFunction:  "Unknown function",
		SimInfo:             "Simplifier information",
		SimUnsupported:      "Simplification not supported",
		ObsInfo:             "Observability information",
		ObsTimings:          "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LOW%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SIM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
