package serializer

import (
	"bytes"
	"encoding/binary"
)

// NonFallable writes into a bytes.Buffer, which never returns write errors, so
// its methods have no error results. Lengths are written exactly as given and
// are not checked against the data that follows.
type NonFallable struct {
	buf *bytes.Buffer
}

func NewNonFallable(buf *bytes.Buffer) *NonFallable {
	return &NonFallable{buf: buf}
}

func (a *NonFallable) Write(b []byte) (int, error) {
	return a.buf.Write(b)
}

func (a *NonFallable) Byte(b byte) {
	a.buf.WriteByte(b)
}

func (a *NonFallable) Uint16(v uint16) {
	a.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func (a *NonFallable) Uint32(v uint32) {
	a.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func (a *NonFallable) Uint64(v uint64) {
	a.buf.Write(binary.LittleEndian.AppendUint64(nil, v))
}

func (a *NonFallable) Bytes(b []byte) {
	a.buf.Write(b)
}

func (a *NonFallable) N() int64 {
	return int64(a.buf.Len())
}
