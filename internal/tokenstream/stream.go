// Package tokenstream reads and writes token streams as JSON or YAML
// fixtures and renders them back to jay source text.
package tokenstream

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/awave1/jay/internal/token"
	"github.com/goccy/go-json"
	"github.com/k0kubun/pp"
	"github.com/samber/lo"
)

var decoderDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("JAY_TOKENSTREAM_DEBUG")); v && err == nil {
		decoderDebugLog = true
	}
}

// Stream is an ordered list of tokens.
type Stream []token.Token

func (s Stream) String() string {
	return token.Render(s...)
}

// entryDef is the object form of a fixture entry.
type entryDef struct {
	Kind string  `json:"kind" mapstructure:"kind"`
	Text *string `json:"text,omitempty" mapstructure:"text"`
}

func (s Stream) MarshalJSON() ([]byte, error) {
	defs := lo.Map(s, func(t token.Token, _ int) entryDef {
		def := entryDef{Kind: t.Kind.String()}
		if t.Kind.IsLiteral() {
			text := t.Text
			def.Text = &text
		}
		return def
	})
	return json.Marshal(defs)
}

func (s *Stream) UnmarshalJSON(b []byte) error {
	var entries []any
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.UseNumber()
	if err := decoder.Decode(&entries); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	stream, err := decodeEntries(entries)
	if err != nil {
		return err
	}
	*s = stream
	return nil
}

type streamDecoder struct {
	debug bool
	out   io.Writer
}

func DecodeJSON(r io.Reader) (Stream, error) {
	d := &streamDecoder{debug: decoderDebugLog, out: os.Stdout}
	return d.decodeJSON(r)
}

// DecodeYAML reads a YAML fixture. Unquoted scalars such as `0x1F` or `true`
// are taken as the text they were written with.
func DecodeYAML(r io.Reader) (Stream, error) {
	d := &streamDecoder{debug: decoderDebugLog, out: os.Stdout}
	return d.decodeYAML(r)
}

// DecodeWithDebugOutput decodes a JSON or YAML stream and dumps the raw
// entries and the result to debugOut.
func DecodeWithDebugOutput(r io.Reader, isYAML bool, debugOut io.Writer) (Stream, error) {
	d := &streamDecoder{debug: true, out: debugOut}
	if isYAML {
		return d.decodeYAML(r)
	}
	return d.decodeJSON(r)
}

func (d *streamDecoder) decodeYAML(r io.Reader) (Stream, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	entries, err := yamlEntries(yamlBytes)
	if err != nil {
		return nil, err
	}
	return d.decode(entries)
}

func (d *streamDecoder) decodeJSON(r io.Reader) (Stream, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var entries []any
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}
	return d.decode(entries)
}

func (d *streamDecoder) decode(entries []any) (Stream, error) {
	if d.debug {
		pp.Fprintln(d.out, entries)
	}

	stream, err := decodeEntries(entries)
	if err != nil {
		return nil, err
	}
	if d.debug {
		pp.Fprintln(d.out, stream)
		fmt.Fprintln(d.out, stream.String())
	}
	return stream, nil
}

// Encode writes the canonical JSON form of s followed by a newline.
func Encode(w io.Writer, s Stream) error {
	if s == nil {
		s = Stream{}
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}
	return nil
}
