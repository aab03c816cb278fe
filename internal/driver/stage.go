package driver

import (
	"fmt"
	"strings"
)

// Stage selects which pipeline output is shown: the token list, the syntax
// tree or the simplified expression.
type Stage uint8

const (
	StageSimplify Stage = iota
	StageAST
	StageTokens
	stageCount
)

var stageNames = [stageCount]string{
	StageSimplify: "simplify",
	StageAST:      "ast",
	StageTokens:   "tokens",
}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// ParseStage converts "simplify" | "ast" | "tokens" to a Stage.
func ParseStage(s string) (Stage, error) {
	for i, name := range stageNames {
		if strings.EqualFold(s, name) {
			return Stage(i), nil
		}
	}
	return StageSimplify, fmt.Errorf("invalid stage: %q (expected: %s)", s, strings.Join(stageNames[:], "|"))
}

// Next cycles simplify → ast → tokens → simplify.
func (s Stage) Next() Stage {
	return (s + 1) % stageCount
}

// Stages lists every stage in menu order.
func Stages() []Stage {
	return []Stage{StageSimplify, StageAST, StageTokens}
}
