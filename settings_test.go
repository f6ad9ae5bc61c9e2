package rascam

import (
	"errors"
	"testing"

	"github.com/kevmo314/go-rascam/pkg/mmal"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Encoding != mmal.EncodingJPEG {
		t.Errorf("Encoding = %s, want %s", s.Encoding, mmal.EncodingJPEG)
	}
	if s.Width != 0 || s.Height != 0 {
		t.Errorf("Width, Height = %d, %d, want 0, 0", s.Width, s.Height)
	}
	if s.ISO != ISOAuto {
		t.Errorf("ISO = %d, want %d", s.ISO, ISOAuto)
	}
	if s.SensorMode != 0 {
		t.Errorf("SensorMode = %d, want 0", s.SensorMode)
	}
	if s.Quality != 95 {
		t.Errorf("Quality = %d, want 95", s.Quality)
	}
	if s.ZeroCopy {
		t.Error("ZeroCopy = true, want false")
	}
	if !s.UseEncoder {
		t.Error("UseEncoder = false, want true")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestDefaultSettings_Idempotent(t *testing.T) {
	if a, b := DefaultSettings(), DefaultSettings(); a != b {
		t.Errorf("DefaultSettings() = %+v, then %+v", a, b)
	}
}

func TestBuildSettings_Resolution(t *testing.T) {
	s, err := BuildSettings(Overrides{Width: Uint32(1920), Height: Uint32(1080)})
	if err != nil {
		t.Fatalf("BuildSettings() error: %v", err)
	}
	if s.Width != 1920 || s.Height != 1080 {
		t.Errorf("Width, Height = %d, %d, want 1920, 1080", s.Width, s.Height)
	}
	if s.Quality != 95 {
		t.Errorf("Quality = %d, want 95", s.Quality)
	}
	if s.ISO != 0 {
		t.Errorf("ISO = %d, want 0", s.ISO)
	}
	if s.ZeroCopy {
		t.Error("ZeroCopy = true, want false")
	}
}

func TestBuildSettings_OnlyNamedFieldsChange(t *testing.T) {
	tests := []struct {
		name      string
		overrides Overrides
		mutate    func(*CameraSettings)
	}{
		{"empty", Overrides{}, func(*CameraSettings) {}},
		{"encoding", Overrides{Encoding: Encoding(mmal.EncodingRGB24)}, func(s *CameraSettings) { s.Encoding = mmal.EncodingRGB24 }},
		{"width", Overrides{Width: Uint32(640)}, func(s *CameraSettings) { s.Width = 640 }},
		{"height", Overrides{Height: Uint32(480)}, func(s *CameraSettings) { s.Height = 480 }},
		{"iso", Overrides{ISO: Uint32(ISO800)}, func(s *CameraSettings) { s.ISO = ISO800 }},
		{"sensor mode", Overrides{SensorMode: Uint32(4)}, func(s *CameraSettings) { s.SensorMode = 4 }},
		{"quality", Overrides{Quality: Uint32(0)}, func(s *CameraSettings) { s.Quality = 0 }},
		{"quality max", Overrides{Quality: Uint32(100)}, func(s *CameraSettings) { s.Quality = 100 }},
		{"zero copy", Overrides{ZeroCopy: Bool(true)}, func(s *CameraSettings) { s.ZeroCopy = true }},
		{"use encoder", Overrides{UseEncoder: Bool(false)}, func(s *CameraSettings) { s.UseEncoder = false }},
		{
			"several",
			Overrides{Width: Uint32(2592), ISO: Uint32(ISO100), ZeroCopy: Bool(true)},
			func(s *CameraSettings) { s.Width, s.ISO, s.ZeroCopy = 2592, ISO100, true },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildSettings(tc.overrides)
			if err != nil {
				t.Fatalf("BuildSettings() error: %v", err)
			}
			want := DefaultSettings()
			tc.mutate(&want)
			if got != want {
				t.Errorf("BuildSettings() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestBuildSettings_QualityOutOfRange(t *testing.T) {
	s, err := BuildSettings(Overrides{Quality: Uint32(150)})
	if !errors.Is(err, ErrQualityOutOfRange) {
		t.Fatalf("BuildSettings() error = %v, want ErrQualityOutOfRange", err)
	}
	if s != (CameraSettings{}) {
		t.Errorf("BuildSettings() returned %+v alongside an error", s)
	}
}

func TestBuildSettings_UnknownISO(t *testing.T) {
	_, err := BuildSettings(Overrides{ISO: Uint32(123)})
	if !errors.Is(err, ErrUnknownISO) {
		t.Fatalf("BuildSettings() error = %v, want ErrUnknownISO", err)
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	s := DefaultSettings()
	s.Quality = 101
	s.ISO = 7
	err := s.Validate()
	if !errors.Is(err, ErrQualityOutOfRange) {
		t.Errorf("Validate() error = %v, want ErrQualityOutOfRange", err)
	}
	if !errors.Is(err, ErrUnknownISO) {
		t.Errorf("Validate() error = %v, want ErrUnknownISO", err)
	}
}

func TestValidate_PassesSentinelsThrough(t *testing.T) {
	s := DefaultSettings()
	s.Width, s.Height, s.SensorMode = 0, 0, 0
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestOverrides_ApplyDoesNotValidate(t *testing.T) {
	s := Overrides{Quality: Uint32(250)}.Apply(DefaultSettings())
	if s.Quality != 250 {
		t.Errorf("Quality = %d, want 250", s.Quality)
	}
}
