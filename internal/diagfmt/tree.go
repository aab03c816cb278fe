package diagfmt

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// writeOutline prints node as an indented box-drawing outline:
//
//	Binary +
//	├─ Number 1
//	└─ Variable x
func writeOutline(w io.Writer, node *treeNode) error {
	if _, err := io.WriteString(w, node.label+"\n"); err != nil {
		return err
	}
	return writeOutlineChildren(w, node, "")
}

func writeOutlineChildren(w io.Writer, node *treeNode, prefix string) error {
	for i, child := range node.children {
		branch, next := "├─ ", "│  "
		if i == len(node.children)-1 {
			branch, next = "└─ ", "   "
		}
		if _, err := io.WriteString(w, prefix+branch+child.label+"\n"); err != nil {
			return err
		}
		if err := writeOutlineChildren(w, child, prefix+next); err != nil {
			return err
		}
	}
	return nil
}

// writeDiagram prints node top-down with the root centred over its children.
func writeDiagram(w io.Writer, node *treeNode) error {
	block := renderTree(node)
	for _, line := range block.lines {
		if _, err := io.WriteString(w, strings.TrimRight(line, " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// padRight дополняет строку пробелами до ширины в колонках терминала.
func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art
// representation. Widths are display columns, so labels with "·" or "√" line
// up with their connectors.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	totalWidth := 0
	for i, block := range childBlocks {
		positions[i] = totalWidth + block.root
		totalWidth += block.width
		if i != len(childBlocks)-1 {
			totalWidth += spacing
		}
	}

	childrenCenter := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	shift := childrenCenter - rootPos

	childPrefix := 0
	if shift < 0 {
		// метка шире детей: сдвигаем детей вправо
		childPrefix = -shift
		for i := range positions {
			positions[i] += childPrefix
		}
		totalWidth += childPrefix
		shift = 0
	} else {
		rootPos += shift
	}

	width := max(totalWidth, shift+labelWidth, rootPos+1)
	rootLine := padRight(strings.Repeat(" ", shift)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{
		lines: lines,
		width: width,
		root:  rootPos,
	}
}
