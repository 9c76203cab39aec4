package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/skagedal/create-program/internal/platform"
)

// FileName is the manifest file name inside a program directory.
const FileName = "package.json"

// Well-known top-level keys.
const (
	KeyName            = "name"
	KeyBin             = "bin"
	KeyMain            = "main"
	KeyType            = "type"
	KeyDevDependencies = "devDependencies"
	KeyScripts         = "scripts"
	KeyPackageManager  = "packageManager"
)

// Manifest is an ordered JSON object.
type Manifest struct {
	keys   []string
	fields map[string]json.RawMessage
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{fields: make(map[string]json.RawMessage)}
}

// Parse decodes a JSON object, keeping key order. A key that appears more
// than once keeps its first position and its last value. Any top-level value
// other than an object is an error.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parsing manifest: top-level value must be an object")
	}

	m := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing manifest: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing manifest field %q: %w", key, err)
		}
		m.SetRaw(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing manifest: unexpected data after top-level object")
	}
	return m, nil
}

// Read loads <dir>/package.json. A missing file yields found == false and no
// error. A file that exists but cannot be read or parsed is an error.
func Read(dir string) (m *Manifest, found bool, err error) {
	path := filepath.Join(dir, FileName)
	data, found, err := platform.ReadFileOptional(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	if !found {
		return New(), false, nil
	}
	m, err = Parse(data)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	return m, true, nil
}

// Write replaces <dir>/package.json with the encoded manifest.
func Write(dir string, m *Manifest) error {
	path := filepath.Join(dir, FileName)
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, platform.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Keys returns the top-level keys in order.
func (m *Manifest) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of top-level keys.
func (m *Manifest) Len() int { return len(m.keys) }

// Has reports whether key is present.
func (m *Manifest) Has(key string) bool {
	_, ok := m.fields[key]
	return ok
}

// Raw returns the encoded value of key.
func (m *Manifest) Raw(key string) (json.RawMessage, bool) {
	v, ok := m.fields[key]
	return v, ok
}

// SetRaw stores an already-encoded value. A new key is appended; an existing
// key keeps its position.
func (m *Manifest) SetRaw(key string, raw json.RawMessage) {
	if _, ok := m.fields[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.fields[key] = append(json.RawMessage(nil), raw...)
}

// Set encodes value and stores it under key.
func (m *Manifest) Set(key string, value any) error {
	raw, err := marshal(value)
	if err != nil {
		return fmt.Errorf("encoding manifest field %q: %w", key, err)
	}
	m.SetRaw(key, raw)
	return nil
}

// Lookup decodes the value of key into out. ok is false when the key is
// absent.
func (m *Manifest) Lookup(key string, out any) (ok bool, err error) {
	raw, ok := m.fields[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("decoding manifest field %q: %w", key, err)
	}
	return true, nil
}

// String returns the value of key when it is a JSON string.
func (m *Manifest) String(key string) (string, bool) {
	var s string
	if ok, err := m.Lookup(key, &s); !ok || err != nil {
		return "", false
	}
	return s, true
}

// Overlay returns a new manifest holding base with every top-level key of
// over laid on top. The overlay is shallow: a key present in over replaces
// the base value wholesale, nested objects are not merged. Keys of base keep
// their order; keys only in over follow in their own order.
func Overlay(base, over *Manifest) *Manifest {
	out := New()
	for _, k := range base.keys {
		out.SetRaw(k, base.fields[k])
	}
	for _, k := range over.keys {
		out.SetRaw(k, over.fields[k])
	}
	return out
}

// MarshalJSON encodes the manifest compactly, keys in order.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.fields[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encode renders the manifest as JSON indented by two spaces with a trailing
// newline. HTML characters are left unescaped so shell operators in scripts
// survive as written.
func (m *Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
