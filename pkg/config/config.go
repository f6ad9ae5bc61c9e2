// Package config loads camera settings from YAML files.
//
//	camera:
//	  encoding: jpeg
//	  width: 1920
//	  height: 1080
//	  iso: auto
//	  quality: 90
//	  awb: sunlight
//
// Keys that are left out keep the value from rascam.DefaultSettings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kevmo314/go-rascam"
	"github.com/kevmo314/go-rascam/pkg/mmal"
	"gopkg.in/yaml.v3"
)

// Session is a validated set of settings plus the white balance preset to
// apply once the camera is configured.
type Session struct {
	Settings rascam.CameraSettings
	AWB      rascam.AWBMode
}

type cameraFile struct {
	Encoding   *string `yaml:"encoding"`
	Width      *uint32 `yaml:"width"`
	Height     *uint32 `yaml:"height"`
	ISO        *string `yaml:"iso"`
	SensorMode *uint32 `yaml:"sensor_mode"`
	Quality    *uint32 `yaml:"quality"`
	ZeroCopy   *bool   `yaml:"zero_copy"`
	UseEncoder *bool   `yaml:"use_encoder"`
	AWB        *string `yaml:"awb"`
}

type file struct {
	Camera cameraFile `yaml:"camera"`
}

// Load reads and decodes the file at path.
func Load(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads one YAML document from r. Unknown keys are an error so that a
// misspelt key is not silently ignored.
func Decode(r io.Reader) (*Session, error) {
	var cfg file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return cfg.Camera.session()
}

func (c cameraFile) overrides() (rascam.Overrides, error) {
	o := rascam.Overrides{
		Width:      c.Width,
		Height:     c.Height,
		SensorMode: c.SensorMode,
		Quality:    c.Quality,
		ZeroCopy:   c.ZeroCopy,
		UseEncoder: c.UseEncoder,
	}
	if c.Encoding != nil {
		e, err := mmal.ParseEncoding(*c.Encoding)
		if err != nil {
			return o, fmt.Errorf("config: camera.encoding: %w", err)
		}
		o.Encoding = &e
	}
	if c.ISO != nil {
		iso, err := rascam.ParseISO(*c.ISO)
		if err != nil {
			return o, fmt.Errorf("config: camera.iso: %w", err)
		}
		o.ISO = &iso
	}
	return o, nil
}

func (c cameraFile) session() (*Session, error) {
	o, err := c.overrides()
	if err != nil {
		return nil, err
	}
	s, err := rascam.BuildSettings(o)
	if err != nil {
		return nil, fmt.Errorf("config: camera: %w", err)
	}
	awb := rascam.AWBModeAuto
	if c.AWB != nil {
		if awb, err = rascam.ParseAWBMode(*c.AWB); err != nil {
			return nil, fmt.Errorf("config: camera.awb: %w", err)
		}
	}
	return &Session{Settings: s, AWB: awb}, nil
}
