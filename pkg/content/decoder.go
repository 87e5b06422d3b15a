// Package content turns raw page content stream bytes into the color
// operator invocations they contain.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// MaxDecodedSize is the default cap on the size of an inflated stream.
const MaxDecodedSize = 256 << 20

// ErrTooLarge is returned when an inflated stream exceeds the decoder limit.
var ErrTooLarge = errors.New("decoded stream exceeds size limit")

// Decoder normalizes content stream bytes for scanning.
type Decoder struct {
	// MaxSize bounds the inflated size of a single stream. Zero means
	// MaxDecodedSize.
	MaxSize int64
}

// DefaultDecoder is used by Decode.
var DefaultDecoder = &Decoder{MaxSize: MaxDecodedSize}

// Decode decodes raw with DefaultDecoder.
func Decode(raw []byte) ([]byte, error) {
	return DefaultDecoder.Decode(raw)
}

// Decode inflates raw if it is a zlib stream. Data that is not compressed,
// or is corrupt, is returned unchanged so it can be scanned as plain text.
// The only error is ErrTooLarge.
func (d *Decoder) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return raw, nil
	}

	plain, err := d.inflate(raw)
	if errors.Is(err, ErrTooLarge) {
		return nil, err
	}
	if err != nil {
		return raw, nil
	}
	return plain, nil
}

func (d *Decoder) inflate(raw []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("zlib header: %w", err)
	}
	defer zr.Close()

	limit := d.MaxSize
	if limit <= 0 {
		limit = MaxDecodedSize
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	if n > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return buf.Bytes(), nil
}
