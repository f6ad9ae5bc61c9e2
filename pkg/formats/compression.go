package formats

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/google/uuid"
	"github.com/kevmo314/go-rascam/pkg/mmal"
)

var ErrNotFourCC = errors.New("guid is not a fourcc media subtype")

type CompressionFormat [16]byte

var (
	CompressionFormatYUY2 = CompressionFormat(uuid.MustParse("32595559-0000-0010-8000-00AA00389B71"))
	CompressionFormatNV12 = CompressionFormat(uuid.MustParse("3231564E-0000-0010-8000-00AA00389B71"))
	CompressionFormatM420 = CompressionFormat(uuid.MustParse("3032344D-0000-0010-8000-00AA00389B71"))
	CompressionFormatI420 = CompressionFormat(uuid.MustParse("30323449-0000-0010-8000-00AA00389B71"))
)

var compressionFormatNames = []struct {
	name   string
	format CompressionFormat
}{
	{"YUY2", CompressionFormatYUY2},
	{"NV12", CompressionFormatNV12},
	{"M420", CompressionFormatM420},
	{"I420", CompressionFormatI420},
}

// the media subtype GUID is this base with the fourcc in the first four bytes
var fourccBase = uuid.MustParse("00000000-0000-0010-8000-00AA00389B71")

// FromEncoding returns the media subtype GUID for an MMAL encoding.
func FromEncoding(e mmal.Encoding) CompressionFormat {
	cf := CompressionFormat(fourccBase)
	binary.BigEndian.PutUint32(cf[0:4], uint32(e))
	return cf
}

// Encoding recovers the MMAL encoding from a fourcc based GUID.
func (cf CompressionFormat) Encoding() (mmal.Encoding, error) {
	if !bytes.Equal(cf[4:], fourccBase[4:]) {
		return 0, ErrNotFourCC
	}
	return mmal.Encoding(binary.BigEndian.Uint32(cf[0:4])), nil
}

func (cf CompressionFormat) UUID() uuid.UUID {
	return uuid.UUID(cf)
}

func (cf CompressionFormat) String() string {
	return cf.UUID().String()
}

// Name returns the subtype name when cf is one of the named formats above.
func (cf CompressionFormat) Name() (string, bool) {
	for _, n := range compressionFormatNames {
		if n.format == cf {
			return n.name, true
		}
	}
	return "", false
}
