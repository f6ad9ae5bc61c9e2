package rascam

import (
	"errors"
	"fmt"

	"github.com/kevmo314/go-rascam/pkg/mmal"
)

const (
	DefaultQuality = 95
	MaxQuality     = 100
)

// CameraSettings are the parameters a capture session is opened with.
//
// Zero in Width, Height, ISO or SensorMode asks the camera to choose: the
// sensor maximum for the dimensions, automatic sensitivity for ISO and the
// default mode for SensorMode. These are passed through unresolved.
//
// A session reads its settings once at setup; build a new value to change them.
type CameraSettings struct {
	Encoding   mmal.Encoding
	Width      uint32
	Height     uint32
	ISO        ISO
	SensorMode uint32
	Quality    uint32 // 0..100, only used by lossy encodings
	ZeroCopy   bool   // hand frame buffers to the caller without copying them

	// Deprecated: UseEncoder selects the hardware encoder stage and will be
	// removed once the encoder is always inserted. Leave it true.
	UseEncoder bool
}

func DefaultSettings() CameraSettings {
	return CameraSettings{
		Encoding:   mmal.EncodingJPEG,
		Width:      0,
		Height:     0,
		ISO:        ISOAuto,
		SensorMode: 0,
		Quality:    DefaultQuality,
		ZeroCopy:   false,
		UseEncoder: true,
	}
}

// Validate reports every field that the camera would reject.
func (s CameraSettings) Validate() error {
	var errs []error
	if s.Quality > MaxQuality {
		errs = append(errs, fmt.Errorf("%w: %d not in [0, %d]", ErrQualityOutOfRange, s.Quality, MaxQuality))
	}
	if !ValidISO(s.ISO) {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownISO, s.ISO))
	}
	return errors.Join(errs...)
}

// Overrides is a partial CameraSettings. Nil fields keep their default.
type Overrides struct {
	Encoding   *mmal.Encoding
	Width      *uint32
	Height     *uint32
	ISO        *ISO
	SensorMode *uint32
	Quality    *uint32
	ZeroCopy   *bool
	UseEncoder *bool
}

// Apply returns s with every non-nil field of o replaced. It does not validate.
func (o Overrides) Apply(s CameraSettings) CameraSettings {
	if o.Encoding != nil {
		s.Encoding = *o.Encoding
	}
	if o.Width != nil {
		s.Width = *o.Width
	}
	if o.Height != nil {
		s.Height = *o.Height
	}
	if o.ISO != nil {
		s.ISO = *o.ISO
	}
	if o.SensorMode != nil {
		s.SensorMode = *o.SensorMode
	}
	if o.Quality != nil {
		s.Quality = *o.Quality
	}
	if o.ZeroCopy != nil {
		s.ZeroCopy = *o.ZeroCopy
	}
	if o.UseEncoder != nil {
		s.UseEncoder = *o.UseEncoder
	}
	return s
}

// BuildSettings applies o to DefaultSettings and validates the result.
func BuildSettings(o Overrides) (CameraSettings, error) {
	s := o.Apply(DefaultSettings())
	if err := s.Validate(); err != nil {
		return CameraSettings{}, err
	}
	return s, nil
}

func Uint32(v uint32) *uint32 { return &v }

func Bool(v bool) *bool { return &v }

func Encoding(e mmal.Encoding) *mmal.Encoding { return &e }
