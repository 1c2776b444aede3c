// Package filters implements the stream codecs used when building and
// reading back content streams. Encoding is byte-reversible: decoding a
// codec's output yields exactly its input, and the encoded byte count is
// what stream dictionaries declare as Length.
package filters

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/hex"
	"errors"
	"io"

	"github.com/vellumpdf/vellum/ir/raw"
)

// Decoder turns encoded stream bytes back into their payload.
type Decoder interface {
	Name() string
	Decode(ctx context.Context, input []byte, params raw.Dictionary) ([]byte, error)
}

// Encoder produces the encoded form whose exact length a stream declares.
type Encoder interface {
	Name() string
	Encode(ctx context.Context, input []byte) ([]byte, error)
}

// Codec is a reversible filter.
type Codec interface {
	Decoder
	Encoder
}

// Registry indexes codecs by filter name.
type Registry struct{ codecs map[string]Codec }

func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	for _, c := range codecs {
		r.codecs[c.Name()] = c
	}
	return r
}

func (r *Registry) Register(c Codec)              { r.codecs[c.Name()] = c }
func (r *Registry) Get(name string) (Codec, bool) { c, ok := r.codecs[name]; return c, ok }

// Default returns a registry holding the codecs the library emits.
func Default() *Registry {
	return NewRegistry(NewFlateCodec(), NewASCIIHexCodec())
}

// Pipeline applies a filter chain in order.
type Pipeline struct {
	registry *Registry
	limits   Limits
}

type Limits struct {
	MaxDecompressedSize int64
}

func NewPipeline(registry *Registry, limits Limits) *Pipeline {
	return &Pipeline{registry: registry, limits: limits}
}

// Decode runs the named filters over input, last-applied first removed.
func (p *Pipeline) Decode(ctx context.Context, input []byte, filterNames []string, params []raw.Dictionary) ([]byte, error) {
	data := input
	for i, name := range filterNames {
		codec, ok := p.registry.Get(name)
		if !ok {
			return nil, errors.New("unknown filter: " + name)
		}
		var param raw.Dictionary
		if i < len(params) {
			param = params[i]
		}
		out, err := codec.Decode(ctx, data, param)
		if err != nil {
			return nil, err
		}
		if p.limits.MaxDecompressedSize > 0 && int64(len(out)) > p.limits.MaxDecompressedSize {
			return nil, errors.New("decompressed size exceeds limit")
		}
		data = out
	}
	return data, nil
}

// flateCodec implements FlateDecode (zlib wrapping) with the standard
// library, best compression on the write side.
type flateCodec struct{}

func NewFlateCodec() Codec          { return flateCodec{} }
func (flateCodec) Name() string     { return "FlateDecode" }

func (flateCodec) Encode(ctx context.Context, input []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(input); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (flateCodec) Decode(ctx context.Context, input []byte, params raw.Dictionary) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// asciiHexCodec implements ASCIIHexDecode.
type asciiHexCodec struct{}

func NewASCIIHexCodec() Codec       { return asciiHexCodec{} }
func (asciiHexCodec) Name() string  { return "ASCIIHexDecode" }

func (asciiHexCodec) Encode(ctx context.Context, input []byte) ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(input))+1)
	hex.Encode(out, input)
	out[len(out)-1] = '>'
	return out, nil
}

func (asciiHexCodec) Decode(ctx context.Context, input []byte, params raw.Dictionary) ([]byte, error) {
	trimmed := bytes.TrimSpace(input)
	if i := bytes.IndexByte(trimmed, '>'); i >= 0 {
		trimmed = trimmed[:i]
	}
	// odd length is padded with a trailing 0
	if len(trimmed)%2 == 1 {
		trimmed = append(trimmed, '0')
	}
	result := make([]byte, hex.DecodedLen(len(trimmed)))
	n, err := hex.Decode(result, trimmed)
	if err != nil {
		return nil, err
	}
	return result[:n], nil
}
