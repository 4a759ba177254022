package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	// FieldVersion holds the integer release number.
	FieldVersion = "version"
	// FieldVersionName holds an optional human-readable release label.
	FieldVersionName = "version-name"

	// DefaultVersion is displayed when the document has no version.
	DefaultVersion = "unknown"
	// DefaultVersionName is displayed when the document has no version name.
	DefaultVersionName = "n/a"

	indent = "  "
)

var errNotObject = errors.New("top-level value must be an object")

// Document is a metadata document held as raw JSON.
type Document struct {
	raw []byte
}

// Parse validates data as a JSON object and returns it as a [Document].
func Parse(data []byte) (*Document, error) {
	var v json.RawMessage

	err := json.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, errNotObject)
	}

	return &Document{raw: bytes.TrimSpace(bytes.Clone(data))}, nil
}

// Get returns the top-level field named key.
func (d *Document) Get(key string) gjson.Result {
	return gjson.GetBytes(d.raw, gjson.Escape(key))
}

// DisplayVersion returns the version for display. It does not validate the
// field's type: strings are shown unquoted, and any other value is shown as
// its JSON text.
func (d *Document) DisplayVersion() string {
	return display(d.Get(FieldVersion), DefaultVersion)
}

// VersionName returns the version name, or [DefaultVersionName] if unset.
func (d *Document) VersionName() string {
	return display(d.Get(FieldVersionName), DefaultVersionName)
}

// Version returns the integer version. It fails with [ErrMissingField] if the
// field is absent, and with [ErrTypeMismatch] unless the field is a JSON
// integer literal.
func (d *Document) Version() (*big.Int, error) {
	r := d.Get(FieldVersion)
	if !r.Exists() {
		return nil, fmt.Errorf("%w %q", ErrMissingField, FieldVersion)
	}

	if r.Type != gjson.Number || strings.ContainsAny(r.Raw, ".eE") {
		return nil, fmt.Errorf("%w: %q must be an integer, got %s", ErrTypeMismatch, FieldVersion, kind(r))
	}

	v, ok := new(big.Int).SetString(r.Raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be an integer, got %s", ErrTypeMismatch, FieldVersion, r.Raw)
	}

	return v, nil
}

// SetVersion replaces the version in place, leaving every other field as is.
func (d *Document) SetVersion(v *big.Int) error {
	raw, err := sjson.SetRawBytes(d.raw, FieldVersion, []byte(v.String()))
	if err != nil {
		return fmt.Errorf("set %q: %w", FieldVersion, err)
	}

	d.raw = raw

	return nil
}

// Bump increments the version by one and returns the old and new values.
// The document is unchanged if the version is missing or not an integer.
func (d *Document) Bump() (*big.Int, *big.Int, error) {
	from, err := d.Version()
	if err != nil {
		return nil, nil, err
	}

	to := new(big.Int).Add(from, big.NewInt(1))

	err = d.SetVersion(to)
	if err != nil {
		return nil, nil, err
	}

	return from, to, nil
}

// MarshalIndent returns the document indented by two spaces, followed by a
// trailing newline.
func (d *Document) MarshalIndent() ([]byte, error) {
	var buf bytes.Buffer

	err := json.Indent(&buf, d.raw, "", indent)
	if err != nil {
		return nil, fmt.Errorf("indent: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func display(r gjson.Result, fallback string) string {
	switch {
	case !r.Exists():
		return fallback
	case r.Type == gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}

func kind(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.String:
		return "string"
	case gjson.Number:
		return "float"
	case gjson.JSON:
		if r.IsArray() {
			return "array"
		}

		return "object"
	}

	return r.Type.String()
}
