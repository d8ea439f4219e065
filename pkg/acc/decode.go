package acc

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// segment names of the shared memory pages
const (
	GraphicsSegment = `Local\acpmf_graphics`
	PhysicsSegment  = `Local\acpmf_physics`
	StaticSegment   = `Local\acpmf_static`
)

var (
	GraphicsSize = binary.Size(Graphics{})
	PhysicsSize  = binary.Size(Physics{})
	StaticSize   = binary.Size(Static{})
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeString converts a NUL terminated UTF-16 buffer to a Go string.
func DecodeString(units []uint16) string {
	n := 0
	for n < len(units) && units[n] != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	raw := make([]byte, 2*n)
	for i := range n {
		binary.LittleEndian.PutUint16(raw[2*i:], units[i])
	}
	out, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}

// EncodeString is the inverse of DecodeString. Input exceeding the buffer is
// truncated, the last unit is always NUL.
func EncodeString(dst []uint16, s string) {
	clear(dst)
	if len(dst) == 0 {
		return
	}
	raw, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return
	}
	for i := 0; i+1 < len(raw) && i/2 < len(dst)-1; i += 2 {
		dst[i/2] = binary.LittleEndian.Uint16(raw[i:])
	}
}

func decode(data []byte, size int, v any) error {
	if len(data) < size {
		return fmt.Errorf("short page: got %d bytes, want %d", len(data), size)
	}
	return binary.Read(bytes.NewReader(data[:size]), binary.LittleEndian, v)
}

func DecodeGraphics(data []byte) (*Graphics, error) {
	g := &Graphics{}
	if err := decode(data, GraphicsSize, g); err != nil {
		return nil, fmt.Errorf("graphics: %w", err)
	}
	return g, nil
}

func DecodePhysics(data []byte) (*Physics, error) {
	p := &Physics{}
	if err := decode(data, PhysicsSize, p); err != nil {
		return nil, fmt.Errorf("physics: %w", err)
	}
	return p, nil
}

func DecodeStatic(data []byte) (*Static, error) {
	s := &Static{}
	if err := decode(data, StaticSize, s); err != nil {
		return nil, fmt.Errorf("static: %w", err)
	}
	return s, nil
}

// Encode serializes a page in shared memory layout.
// Used by tests and the file based source tooling.
func Encode(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
