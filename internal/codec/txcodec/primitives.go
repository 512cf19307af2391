package txcodec

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by the Read* helpers when the buffer does not
// hold enough bytes for the requested field.
var ErrShortBuffer = errors.New("txcodec: buffer too short")

// ReadUint16 reads a big-endian uint16 at offset off.
func ReadUint16(b []byte, off int) (uint16, error) {
	if off+2 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint16(b[off:]), nil
}

// ReadUint32 reads a big-endian uint32 at offset off.
func ReadUint32(b []byte, off int) (uint32, error) {
	if off+4 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}

// ReadUint64 reads a big-endian uint64 at offset off.
func ReadUint64(b []byte, off int) (uint64, error) {
	if off+8 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint64(b[off:]), nil
}

// ReadFixed reads n raw bytes at offset off.
func ReadFixed(b []byte, off, n int) ([]byte, error) {
	if off+n > len(b) {
		return nil, ErrShortBuffer
	}
	out := make([]byte, n)
	copy(out, b[off:off+n])
	return out, nil
}

// PutUint16 appends a big-endian uint16.
func PutUint16(buf []byte, v uint16) []byte {
	tmp := make([]byte, 2)
	binary.BigEndian.PutUint16(tmp, v)
	return append(buf, tmp...)
}

// PutUint32 appends a big-endian uint32.
func PutUint32(buf []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, v)
	return append(buf, tmp...)
}

// PutUint64 appends a big-endian uint64.
func PutUint64(buf []byte, v uint64) []byte {
	tmp := make([]byte, 8)
	binary.BigEndian.PutUint64(tmp, v)
	return append(buf, tmp...)
}

// PutFixed appends raw bytes as-is, panicking if the caller passed the
// wrong width (a programmer error, not a runtime condition).
func PutFixed(buf []byte, b []byte, width int) []byte {
	if len(b) != width {
		panic("txcodec: fixed field width mismatch")
	}
	return append(buf, b...)
}
