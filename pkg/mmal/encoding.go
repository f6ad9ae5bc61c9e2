package mmal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoding is an MMAL_FOURCC_T value selecting the output format of a port.
type Encoding uint32

// FourCC packs four characters the way the MMAL_FOURCC macro does.
func FourCC(a, b, c, d byte) Encoding {
	return Encoding(uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24)
}

var (
	EncodingJPEG   = FourCC('J', 'P', 'E', 'G')
	EncodingGIF    = FourCC('G', 'I', 'F', ' ')
	EncodingPNG    = FourCC('P', 'N', 'G', ' ')
	EncodingPPM    = FourCC('P', 'P', 'M', ' ')
	EncodingTGA    = FourCC('T', 'G', 'A', ' ')
	EncodingBMP    = FourCC('B', 'M', 'P', ' ')
	EncodingI420   = FourCC('I', '4', '2', '0')
	EncodingI422   = FourCC('I', '4', '2', '2')
	EncodingYV12   = FourCC('Y', 'V', '1', '2')
	EncodingNV12   = FourCC('N', 'V', '1', '2')
	EncodingNV21   = FourCC('N', 'V', '2', '1')
	EncodingYUYV   = FourCC('Y', 'U', 'Y', 'V')
	EncodingRGB24  = FourCC('R', 'G', 'B', '3')
	EncodingBGR24  = FourCC('B', 'G', 'R', '3')
	EncodingRGBA   = FourCC('R', 'G', 'B', 'A')
	EncodingBGRA   = FourCC('B', 'G', 'R', 'A')
	EncodingH264   = FourCC('H', '2', '6', '4')
	EncodingMJPEG  = FourCC('M', 'J', 'P', 'G')
	EncodingOpaque = FourCC('O', 'P', 'Q', 'V')
)

type namedEncoding struct {
	name     string
	encoding Encoding
}

// ordered so that Encodings() and the inspector list are stable
var encodingNames = []namedEncoding{
	{"JPEG", EncodingJPEG},
	{"GIF", EncodingGIF},
	{"PNG", EncodingPNG},
	{"PPM", EncodingPPM},
	{"TGA", EncodingTGA},
	{"BMP", EncodingBMP},
	{"I420", EncodingI420},
	{"I422", EncodingI422},
	{"YV12", EncodingYV12},
	{"NV12", EncodingNV12},
	{"NV21", EncodingNV21},
	{"YUYV", EncodingYUYV},
	{"RGB24", EncodingRGB24},
	{"BGR24", EncodingBGR24},
	{"RGBA", EncodingRGBA},
	{"BGRA", EncodingBGRA},
	{"H264", EncodingH264},
	{"MJPEG", EncodingMJPEG},
	{"OPAQUE", EncodingOpaque},
}

// Encodings returns the encodings this package has a name for.
func Encodings() []Encoding {
	encs := make([]Encoding, len(encodingNames))
	for i, ne := range encodingNames {
		encs[i] = ne.encoding
	}
	return encs
}

func (e Encoding) FourCC() [4]byte {
	return [4]byte{byte(e), byte(e >> 8), byte(e >> 16), byte(e >> 24)}
}

// Name returns the short name of a known encoding.
func (e Encoding) Name() (string, bool) {
	for _, ne := range encodingNames {
		if ne.encoding == e {
			return ne.name, true
		}
	}
	return "", false
}

func (e Encoding) String() string {
	if name, ok := e.Name(); ok {
		return name
	}
	fcc := e.FourCC()
	for _, c := range fcc {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(e))
		}
	}
	return string(fcc[:])
}

// ParseEncoding accepts a short name such as "jpeg" or "rgb24" in any case, or
// the exact FourCC of a known encoding such as "RGB3".
func ParseEncoding(s string) (Encoding, error) {
	upper := strings.ToUpper(s)
	for _, ne := range encodingNames {
		if ne.name == upper {
			return ne.encoding, nil
		}
	}
	if len(s) == 4 {
		e := FourCC(s[0], s[1], s[2], s[3])
		if _, ok := e.Name(); ok {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}
