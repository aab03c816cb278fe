package fuzztests

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 4 << 10 // одна строка, больше не нужно
	maxFuzzInput = 1 << 12
)

var builtinSeeds = []string{
	"",
	" ",
	"\ufeff1+1",
	"1\r\n",
	"e\u0301",
	"日本 + 1",
	"((((((((((x))))))))))",
	"root:[1]",
	"root:1:2[3]",
	"sqrt[]",
	"1..2",
	"--+-+x",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add(s)
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every line of testdata/expressions.txt.
func addTestdataSeeds(f *testing.F) {
	file, err := os.Open(filepath.Join("testdata", "expressions.txt"))
	if err != nil {
		return
	}
	defer file.Close()
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		f.Add(clampSeed(sc.Text()))
	}
}

func clampSeed(src string) string {
	if len(src) <= maxSeedBytes {
		return src
	}
	return src[:maxSeedBytes]
}

func clampInput(src string) string {
	if len(src) <= maxFuzzInput {
		return src
	}
	return src[:maxFuzzInput]
}
