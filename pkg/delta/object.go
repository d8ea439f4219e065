package delta

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDuplicateKey = errors.New("duplicate key")

// Object is a JSON object that keeps the insertion order of its keys.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Set adds key. Keys can only be added once.
func (o *Object) Set(key string, v any) error {
	if _, ok := o.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	o.keys = append(o.keys, key)
	o.values[key] = v
	return nil
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Object returns the child object stored under key
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.values[key].(*Object)
	return v, ok
}

func (o *Object) Keys() []string {
	return o.keys
}

func (o *Object) Len() int {
	return len(o.keys)
}

func (o *Object) IsEmpty() bool {
	return len(o.keys) == 0
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal serializes v as JSON. Unlike json.Marshal, <, > and & are kept as they are.
func Marshal(v any) ([]byte, error) {
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
