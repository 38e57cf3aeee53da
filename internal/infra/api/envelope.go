package api

import (
	"bytes"
	"encoding/json"

	"streetbite/internal/errors"
)

var errUnexpectedShape = errors.New("unexpected response shape")

// listKeys are the wrapper keys the backend uses around collections, checked
// after the resource-specific key.
var listKeys = []string{"data", "items", "content"}

// decodeList accepts a bare array, null, or an object wrapping the array under
// resource or one of listKeys. One level of nesting is followed, so
// {"data": {"content": [...]}} decodes too.
func decodeList[T any](raw []byte, resource string) ([]T, error) {
	return decodeListDepth[T](raw, resource, 2)
}

func decodeListDepth[T any](raw []byte, resource string, depth int) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []T{}, nil
	}

	switch raw[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, errors.Wrap(err, "decode list")
		}
		if out == nil {
			out = []T{}
		}

		return out, nil
	case '{':
		if depth == 0 {
			return nil, errUnexpectedShape
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, errors.Wrap(err, "decode list wrapper")
		}
		keys := append([]string{resource}, listKeys...)
		for _, k := range keys {
			if k == "" {
				continue
			}
			if inner, ok := obj[k]; ok {
				return decodeListDepth[T](inner, resource, depth-1)
			}
		}

		return nil, errUnexpectedShape
	default:
		return nil, errUnexpectedShape
	}
}

// decodeItem accepts a bare object or one wrapped under resource or "data".
// A "data" wrapper is only followed when the outer object has no id of its
// own, so records that happen to carry a "data" field are not misread.
func decodeItem[T any](raw []byte, resource string) (*T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errUnexpectedShape
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrap(err, "decode item wrapper")
	}
	_, hasID := obj["id"]
	for _, k := range []string{resource, "data"} {
		inner, ok := obj[k]
		if !ok || k == "" {
			continue
		}
		inner = bytes.TrimSpace(inner)
		if len(inner) > 0 && inner[0] == '{' && (k == resource || !hasID) {
			raw = inner

			break
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode item")
	}

	return &out, nil
}
