// Package codec centralizes how the command-line front end encodes its
// replies and decodes record files.
//
// Replies are written one document per line through a LineWriter; the
// codec is selectable by name.
package codec

import "io"

// Codec appends encoded values to a buffer and decodes them back.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Append appends the encoding of v to dst and returns the extended buffer.
	Append(dst []byte, v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is selected.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json"}
}

// LineWriter writes one encoded document per line to an io.Writer.
// It reuses a single buffer across writes and is not safe for concurrent use.
type LineWriter struct {
	codec Codec
	w     io.Writer
	buf   []byte
}

// NewLineWriter returns a LineWriter encoding with c. A nil c selects Default.
func NewLineWriter(w io.Writer, c Codec) *LineWriter {
	if c == nil {
		c = Default
	}
	return &LineWriter{codec: c, w: w}
}

// Encode writes v followed by a newline. Nothing is written if encoding fails.
func (lw *LineWriter) Encode(v any) error {
	b, err := lw.codec.Append(lw.buf[:0], v)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	lw.buf = b

	_, err = lw.w.Write(b)
	return err
}
