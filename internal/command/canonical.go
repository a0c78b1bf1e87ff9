package command

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// DisplayURI is the command a client processes by opening the given URI,
// used for "send tab to device" style sharing. Its args are the URL and the
// page title (empty string when there is none).
const DisplayURI = "displayURI"

// New builds a Command carrying the canonical payload encoding for the given
// action name and positional arguments:
//
//	{"args":["…","…"],"command":"name"}
//
// Object keys appear in sorted order, strings are NFC normalized, HTML
// escaping is disabled, and no insignificant whitespace is emitted. Identical
// logical commands therefore always produce byte-identical Value strings,
// which is what makes value-based dedup in the store correct.
func New(name string, args ...string) (Command, error) {
	if name == "" {
		return Command{}, fmt.Errorf("encode command: empty command name")
	}

	var buf bytes.Buffer
	buf.WriteString(`{"args":[`)
	for i, a := range args {
		if i > 0 {
			buf.WriteByte(',')
		}
		s, err := encodeString(a)
		if err != nil {
			return Command{}, fmt.Errorf("encode command arg[%d]: %w", i, err)
		}
		buf.Write(s)
	}
	buf.WriteString(`],"command":`)
	s, err := encodeString(name)
	if err != nil {
		return Command{}, fmt.Errorf("encode command name: %w", err)
	}
	buf.Write(s)
	buf.WriteByte('}')

	return Command{Value: buf.String()}, nil
}

// FromShareItem builds the display-URI command for a shared page. Pass an
// empty title when the share item has none.
func FromShareItem(url, title string) (Command, error) {
	if url == "" {
		return Command{}, fmt.Errorf("encode share command: empty url")
	}
	return New(DisplayURI, url, title)
}

// encodeString produces a canonical JSON string: NFC normalized at the
// serialization boundary, with HTML escaping disabled so <, > and & pass
// through literally.
func encodeString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}

	return result, nil
}
