package formats

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kevmo314/go-rascam/pkg/mmal"
)

func TestFromEncoding_MatchesKnownGUIDs(t *testing.T) {
	tests := []struct {
		encoding mmal.Encoding
		want     CompressionFormat
	}{
		{mmal.EncodingI420, CompressionFormatI420},
		{mmal.EncodingNV12, CompressionFormatNV12},
		{mmal.FourCC('Y', 'U', 'Y', '2'), CompressionFormatYUY2},
		{mmal.FourCC('M', '4', '2', '0'), CompressionFormatM420},
	}
	for _, tc := range tests {
		if got := FromEncoding(tc.encoding); got != tc.want {
			t.Errorf("FromEncoding(%s) = %s, want %s", tc.encoding, got, tc.want)
		}
	}
}

func TestCompressionFormat_EncodingRoundTrip(t *testing.T) {
	for _, e := range mmal.Encodings() {
		got, err := FromEncoding(e).Encoding()
		if err != nil {
			t.Errorf("FromEncoding(%s).Encoding() error: %v", e, err)
			continue
		}
		if got != e {
			t.Errorf("FromEncoding(%s).Encoding() = %s, want %s", e, got, e)
		}
	}
}

func TestCompressionFormat_Encoding_NotFourCC(t *testing.T) {
	cf := CompressionFormat(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	if _, err := cf.Encoding(); !errors.Is(err, ErrNotFourCC) {
		t.Errorf("Encoding() error = %v, want ErrNotFourCC", err)
	}
}

func TestCompressionFormat_String(t *testing.T) {
	got := FromEncoding(mmal.EncodingJPEG).String()
	want := "4745504a-0000-0010-8000-00aa00389b71"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompressionFormat_Name(t *testing.T) {
	tests := []struct {
		format CompressionFormat
		want   string
		ok     bool
	}{
		{FromEncoding(mmal.EncodingI420), "I420", true},
		{FromEncoding(mmal.EncodingNV12), "NV12", true},
		{CompressionFormatYUY2, "YUY2", true},
		{CompressionFormatM420, "M420", true},
		{FromEncoding(mmal.EncodingJPEG), "", false},
	}
	for _, tc := range tests {
		got, ok := tc.format.Name()
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s.Name() = %q, %v, want %q, %v", tc.format, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCompressionFormat_UUID(t *testing.T) {
	cf := FromEncoding(mmal.EncodingH264)
	if got := cf.UUID(); got.String() != cf.String() || [16]byte(got) != [16]byte(cf) {
		t.Errorf("UUID() = %s, want %s", got, cf)
	}
}
