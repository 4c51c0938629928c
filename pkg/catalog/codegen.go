package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Props is an insertion-ordered prop mapping for code generation.
type Props = orderedmap.OrderedMap[string, any]

// NewProps returns an empty Props.
func NewProps() *Props {
	return orderedmap.New[string, any]()
}

// GenerateComponentCode renders an import statement plus a usage tag for name.
// Attributes follow props iteration order. A nil props renders a bare tag.
// Unknown names fail with a *NotFoundError.
func (q *QueryService) GenerateComponentCode(name string, props *Props) (string, error) {
	detail, ok := q.GetComponent(name)
	if !ok {
		return "", &NotFoundError{Name: name}
	}

	attrs, err := renderAttributes(props)
	if err != nil {
		return "", fmt.Errorf("component %s: %w", name, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "import { %s } from '%s'\n\n// Usage example\n<%s", detail.Name, q.exportPath, detail.Name)
	if attrs != "" {
		sb.WriteByte(' ')
		sb.WriteString(attrs)
	}
	sb.WriteString(" />")
	return sb.String(), nil
}

func renderAttributes(props *Props) (string, error) {
	if props == nil || props.Len() == 0 {
		return "", nil
	}

	parts := make([]string, 0, props.Len())
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		attr, err := renderAttribute(pair.Key, pair.Value)
		if err != nil {
			return "", err
		}
		parts = append(parts, attr)
	}
	return strings.Join(parts, " "), nil
}

// renderAttribute: strings are quoted verbatim, true is a bare attribute,
// everything else (false included) is a braced JSON literal.
func renderAttribute(key string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return key + `="` + v + `"`, nil
	case bool:
		if v {
			return key, nil
		}
		return key + "={false}", nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("prop %q: %w", key, err)
	}
	return key + "={" + strings.TrimSuffix(buf.String(), "\n") + "}", nil
}

// ParseProps decodes a JSON object into Props, keeping key order. Nested
// objects and arrays are kept as raw JSON, so their order survives too.
func ParseProps(data []byte) (*Props, error) {
	props := NewProps()
	if len(bytes.TrimSpace(data)) == 0 {
		return props, nil
	}
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("props must be a JSON object: %w", err)
	}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		v, err := DecodePropValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", pair.Key, err)
		}
		props.Set(pair.Key, v)
	}
	return props, nil
}

// DecodePropValue decodes one JSON prop value. Strings, numbers, booleans and
// null become Go values; objects and arrays stay compacted json.RawMessage.
func DecodePropValue(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, err
		}
		return json.RawMessage(buf.Bytes()), nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
