// Package bitrow converts between packed glyph records and per-row integers.
//
// A glyph record is height rows of RowBytes(width) bytes. Each row holds the
// pixels most-significant-bit first, left-justified, so the low-order
// AlignedWidth(width)-width bits of a row are padding.
package bitrow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/icza/bitio"

	"github.com/pbnjay/sheetfont"
)

// MaxWidth is the widest row that fits the integers used for rows.
const MaxWidth = sheetfont.MaxWidth

// ErrWordOverflow is returned by WriteWords for a row value that does not fit
// in 16 bits.
var ErrWordOverflow = errors.New("row does not fit in a 16-bit word")

// RowBytes returns the number of bytes holding one row of the given width.
func RowBytes(width int) int {
	return (width + 7) / 8
}

// AlignedWidth returns the byte-aligned bit width of one row.
func AlignedWidth(width int) int {
	return RowBytes(width) * 8
}

// RecordSize returns the size in bytes of one glyph record.
func RecordSize(width, height int) int {
	return RowBytes(width) * height
}

// CheckSize reports an error unless width is 1-MaxWidth and height is
// positive.
func CheckSize(width, height int) error {
	if width < 1 || width > MaxWidth {
		return fmt.Errorf("cell width %d out of range 1-%d", width, MaxWidth)
	}
	if height < 1 {
		return fmt.Errorf("cell height %d must be positive", height)
	}
	return nil
}

// Count returns the number of whole glyph records in data, and the number of
// trailing bytes that do not form a whole record.
func Count(data []byte, width, height int) (records, rest int) {
	size := RecordSize(width, height)
	if size == 0 {
		return 0, len(data)
	}
	return len(data) / size, len(data) % size
}

// Records yields the whole glyph records in data in order, with their slot
// index. A trailing partial record is not yielded.
func Records(data []byte, width, height int) iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		n, _ := Count(data, width, height)
		size := RecordSize(width, height)
		for i := 0; i < n; i++ {
			if !yield(i, data[i*size:(i+1)*size]) {
				return
			}
		}
	}
}

// Unpack reshapes one glyph record into height integers holding width
// significant bits each. The padding bits of every row are skipped and never
// affect the result.
func Unpack(record []byte, width, height int) ([]uint64, error) {
	if err := CheckSize(width, height); err != nil {
		return nil, err
	}
	if len(record) < RecordSize(width, height) {
		return nil, fmt.Errorf("short glyph record: %d bytes, need %d",
			len(record), RecordSize(width, height))
	}

	pad := uint8(AlignedWidth(width) - width)
	r := bitio.NewReader(bytes.NewReader(record))
	rows := make([]uint64, height)
	for y := range rows {
		rows[y] = r.TryReadBits(uint8(width))
		if pad > 0 {
			r.TryReadBits(pad)
		}
	}
	if r.TryError != nil {
		return nil, r.TryError
	}
	return rows, nil
}

// Pack is the inverse of Unpack: it writes each row's width low-order bits
// followed by zero padding up to the byte boundary. Higher bits are ignored.
func Pack(rows []uint64, width int) ([]byte, error) {
	if err := CheckSize(width, 1); err != nil {
		return nil, err
	}

	pad := uint8(AlignedWidth(width) - width)
	mask := ^uint64(0) >> uint(64-width)
	buf := &bytes.Buffer{}
	w := bitio.NewWriter(buf)
	for _, row := range rows {
		w.TryWriteBits(row&mask, uint8(width))
		if pad > 0 {
			w.TryWriteBits(0, pad)
		}
	}
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWords writes each row as a big-endian unsigned 16-bit word.
func WriteWords(out io.Writer, rows []uint64) error {
	w := bitio.NewWriter(out)
	for i, row := range rows {
		if row > 0xFFFF {
			return fmt.Errorf("row %d (%#x): %w", i, row, ErrWordOverflow)
		}
		if err := w.WriteBits(row, 16); err != nil {
			return err
		}
	}
	return w.Close()
}
