package tokenstream

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awave1/jay/internal/token"
	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
)

var (
	ErrInvalidEntry   = errors.New("invalid entry")
	ErrUnknownKind    = errors.New("unknown kind")
	ErrUnknownText    = errors.New("unknown token text")
	ErrUnexpectedText = errors.New("text does not match fixed kind")
	ErrMissingText    = errors.New("literal without text")
)

// DecodeError reports which entry of a stream could not be decoded.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("entry #%d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeEntries(entries []any) (Stream, error) {
	stream := make(Stream, 0, len(entries))
	for i, entry := range entries {
		tok, err := decodeEntry(entry)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		stream = append(stream, tok)
	}
	return stream, nil
}

// decodeEntry accepts either the canonical text of a fixed kind ("(",
// "while") or an object {"kind": ..., "text": ...}.
func decodeEntry(entry any) (token.Token, error) {
	switch v := entry.(type) {
	case string:
		k, ok := token.KindOfText(v)
		if !ok {
			return token.Token{}, fmt.Errorf("%w: %q", ErrUnknownText, v)
		}
		return token.New(k), nil

	case map[string]any:
		if err := normalizeText(v); err != nil {
			return token.Token{}, err
		}

		var def entryDef
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused: true,
			Result:      &def,
		})
		if err != nil {
			return token.Token{}, fmt.Errorf("mapstructure.NewDecoder: %w", err)
		}
		if err := decoder.Decode(v); err != nil {
			return token.Token{}, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
		}
		return def.token()

	default:
		return token.Token{}, fmt.Errorf("%w: %T", ErrInvalidEntry, entry)
	}
}

// normalizeText turns a scalar "text" into its source form. JSON numbers
// keep their digits as written and booleans become "true" or "false".
func normalizeText(m map[string]any) error {
	raw, ok := m["text"]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case nil:
		delete(m, "text")
	case string:
	case json.Number:
		m["text"] = t.String()
	case bool:
		m["text"] = strconv.FormatBool(t)
	default:
		return fmt.Errorf("%w: text must be a string, number or boolean, got %T", ErrInvalidEntry, raw)
	}
	return nil
}

func (def entryDef) token() (token.Token, error) {
	k, ok := token.ParseKind(def.Kind)
	if !ok {
		return token.Token{}, fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)
	}

	if k.IsLiteral() {
		if def.Text == nil {
			return token.Token{}, fmt.Errorf("%w: %s", ErrMissingText, k)
		}
		return token.Token{Kind: k, Text: *def.Text}, nil
	}

	if def.Text != nil && *def.Text != k.Text() {
		return token.Token{}, fmt.Errorf("%w: %s is %q, got %q", ErrUnexpectedText, k, k.Text(), *def.Text)
	}
	return token.New(k), nil
}
