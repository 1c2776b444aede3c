// Package writer serializes a document's object graph. Every node marked
// unique is assigned exactly one indirect identity, shared nodes serialize
// as references from every parent, and inline arrays are embedded verbatim.
package writer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/vellumpdf/vellum/ir/raw"
	"github.com/vellumpdf/vellum/ir/semantic"
	"github.com/vellumpdf/vellum/observability"
	"github.com/vellumpdf/vellum/xref"
)

type PDFVersion string

const PDF17 PDFVersion = "1.7"

type Config struct {
	Version  PDFVersion
	Producer string

	// Deterministic derives the file ID from the document contents
	// instead of generating a random one.
	Deterministic bool

	Logger observability.Logger
}

// ErrNoRoot is returned for documents whose trailer lacks a Root entry.
var ErrNoRoot = errors.New("writer: document has no root structure")

// Write serializes doc to out.
func Write(out io.Writer, doc *semantic.Document, cfg Config) error {
	if cfg.Version == "" {
		cfg.Version = PDF17
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NopLogger{}
	}

	catalog := doc.Catalog()
	if catalog == nil {
		return ErrNoRoot
	}

	alloc := newAllocator()
	alloc.walk(catalog)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", cfg.Version)

	table := xref.NewTable()
	for _, obj := range alloc.order {
		ref := alloc.refs[obj]
		table.Add(ref, int64(buf.Len()))
		fmt.Fprintf(&buf, "%d %d obj\n", ref.Num, ref.Gen)
		buf.Write(alloc.serializeValue(obj, true))
		buf.WriteString("\nendobj\n")
	}

	var infoRef *raw.ObjectRef
	if cfg.Producer != "" {
		info := raw.Dict()
		info.Set("Producer", raw.StrLiteral(cfg.Producer))
		ref := alloc.nextRef()
		table.Add(ref, int64(buf.Len()))
		fmt.Fprintf(&buf, "%d %d obj\n", ref.Num, ref.Gen)
		buf.Write(alloc.serializeValue(info, true))
		buf.WriteString("\nendobj\n")
		infoRef = &ref
	}

	xrefOffset := int64(buf.Len())
	if _, err := table.WriteTo(&buf); err != nil {
		return err
	}

	trailer := raw.Dict()
	trailer.Set("Size", raw.NumberInt(int64(table.Size())))
	trailer.Set("Root", raw.Ref(alloc.refs[raw.Object(catalog)].Num, 0))
	if infoRef != nil {
		trailer.Set("Info", raw.Ref(infoRef.Num, infoRef.Gen))
	}
	id := fileID(doc, cfg)
	trailer.Set("ID", raw.NewArray(raw.HexStr(id[0]), raw.HexStr(id[1])))

	buf.WriteString("trailer\n")
	buf.Write(alloc.serializeValue(trailer, true))
	fmt.Fprintf(&buf, "\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	cfg.Logger.Debug("document serialized",
		observability.Int("objects", table.Len()),
		observability.Int("bytes", buf.Len()),
	)
	_, err := out.Write(buf.Bytes())
	return err
}

// fileID produces the trailer ID pair. Fresh documents get a random
// UUID; deterministic mode derives one from the document shape so equal
// inputs serialize identically.
func fileID(doc *semantic.Document, cfg Config) [2][]byte {
	if cfg.Deterministic {
		seed := fmt.Sprintf("%s/%d", cfg.Producer, len(doc.Pages()))
		u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
		return [2][]byte{u[:], u[:]}
	}
	u := uuid.New()
	return [2][]byte{u[:], u[:]}
}
