package diag

import (
	"cmp"
	"slices"

	"fortio.org/safecast"
)

const maxBagSize = 0xFFFF

// Bag collects the diagnostics of one input line, up to a limit
// (--max-diagnostics).
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag: max <= 0 means the largest limit.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint16](max)
	if err != nil || limit == 0 {
		limit = maxBagSize
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 4)),
		max:   limit,
	}
}

// Add добавляет диагностику, если лимит не исчерпан.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors: хотя бы одна диагностика уровня error.
func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

// Items is read-only; use Filter for a copy to reorder.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Filter returns a sorted, deduplicated copy holding the diagnostics at or
// above floor. This is the view the renderers print.
func (b *Bag) Filter(floor Severity) *Bag {
	out := &Bag{max: b.max}
	for _, d := range b.items {
		if d.Severity >= floor {
			out.items = append(out.items, d)
		}
	}
	out.Sort()
	out.Dedup()
	return out
}

// Sort: по позиции начала, затем конца; на одном месте error раньше info.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.Start.Index, y.Primary.Start.Index),
			cmp.Compare(x.Primary.End.Index, y.Primary.End.Index),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops exact repeats (code, span and message), keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code       Code
		start, end uint32
		msg        string
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary.Start.Index, d.Primary.End.Index, d.Message}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
