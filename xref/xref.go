// Package xref builds the classic cross-reference table emitted at the
// end of a serialized document.
package xref

import (
	"fmt"
	"io"
	"sort"

	"github.com/vellumpdf/vellum/ir/raw"
)

// Entry records the byte offset of one in-use indirect object.
type Entry struct {
	Ref    raw.ObjectRef
	Offset int64
}

// Table accumulates entries as the writer emits objects.
type Table struct {
	entries []Entry
}

func NewTable() *Table { return &Table{} }

func (t *Table) Add(ref raw.ObjectRef, offset int64) {
	t.entries = append(t.entries, Entry{Ref: ref, Offset: offset})
}

// Size is the trailer Size value: one past the highest object number.
func (t *Table) Size() int {
	max := 0
	for _, e := range t.entries {
		if e.Ref.Num > max {
			max = e.Ref.Num
		}
	}
	return max + 1
}

func (t *Table) Len() int { return len(t.entries) }

// WriteTo emits the table: the free-list head followed by one line per
// object in number order. Object numbers are expected to be contiguous
// from 1, which is how the writer allocates them.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	sorted := make([]Entry, len(t.entries))
	copy(sorted, t.entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Ref.Num < sorted[j].Ref.Num })

	var written int64
	n, err := fmt.Fprintf(w, "xref\n0 %d\n0000000000 65535 f \n", len(sorted)+1)
	written += int64(n)
	if err != nil {
		return written, err
	}
	for _, e := range sorted {
		n, err := fmt.Fprintf(w, "%010d %05d n \n", e.Offset, e.Ref.Gen)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
