package rascam

import (
	"strconv"
	"strings"

	"github.com/kevmo314/go-rascam/pkg/mmal"
)

// AWBMode selects an auto white balance preset. New presets may be added
// before AWBModeMax.
type AWBMode int

const (
	AWBModeOff AWBMode = iota
	AWBModeAuto
	AWBModeSunlight
	AWBModeCloudy
	AWBModeShade
	AWBModeTungsten
	AWBModeFluorescent
	AWBModeIncandescent
	AWBModeFlash
	AWBModeHorizon
	AWBModeGreyworld
	// AWBModeMax is the firmware's bound marker. It parses and maps for
	// parity with the MMAL enum but is not a selectable preset.
	AWBModeMax

	awbModeCount
)

var awbModeNames = [...]string{
	AWBModeOff:          "OFF",
	AWBModeAuto:         "AUTO",
	AWBModeSunlight:     "SUNLIGHT",
	AWBModeCloudy:       "CLOUDY",
	AWBModeShade:        "SHADE",
	AWBModeTungsten:     "TUNGSTEN",
	AWBModeFluorescent:  "FLUORESCENT",
	AWBModeIncandescent: "INCANDESCENT",
	AWBModeFlash:        "FLASH",
	AWBModeHorizon:      "HORIZON",
	AWBModeGreyworld:    "GREYWORLD",
	AWBModeMax:          "MAX",
}

var awbHardwareCodes = [...]mmal.ParamAWBMode{
	AWBModeOff:          mmal.ParamAWBModeOff,
	AWBModeAuto:         mmal.ParamAWBModeAuto,
	AWBModeSunlight:     mmal.ParamAWBModeSunlight,
	AWBModeCloudy:       mmal.ParamAWBModeCloudy,
	AWBModeShade:        mmal.ParamAWBModeShade,
	AWBModeTungsten:     mmal.ParamAWBModeTungsten,
	AWBModeFluorescent:  mmal.ParamAWBModeFluorescent,
	AWBModeIncandescent: mmal.ParamAWBModeIncandescent,
	AWBModeFlash:        mmal.ParamAWBModeFlash,
	AWBModeHorizon:      mmal.ParamAWBModeHorizon,
	AWBModeGreyworld:    mmal.ParamAWBModeGreyworld,
	AWBModeMax:          mmal.ParamAWBModeMax,
}

// Both tables must have exactly one entry per mode. A mismatch makes one of
// these array lengths negative and fails the build.
var (
	_ [len(awbModeNames) - int(awbModeCount)]struct{}
	_ [int(awbModeCount) - len(awbModeNames)]struct{}
	_ [len(awbHardwareCodes) - int(awbModeCount)]struct{}
	_ [int(awbModeCount) - len(awbHardwareCodes)]struct{}
)

var awbModesByName = func() map[string]AWBMode {
	m := make(map[string]AWBMode, awbModeCount)
	for mode, name := range awbModeNames {
		m[name] = AWBMode(mode)
	}
	return m
}()

// AWBModes returns the selectable presets, which excludes AWBModeMax.
func AWBModes() []AWBMode {
	modes := make([]AWBMode, 0, int(AWBModeMax))
	for mode := AWBModeOff; mode < AWBModeMax; mode++ {
		modes = append(modes, mode)
	}
	return modes
}

// ParseAWBMode matches name against the mode names after upper-casing it.
// Surrounding whitespace is not trimmed.
func ParseAWBMode(name string) (AWBMode, error) {
	if mode, ok := awbModesByName[strings.ToUpper(name)]; ok {
		return mode, nil
	}
	return 0, &UnrecognizedModeError{Kind: "awb", Name: name}
}

func (m AWBMode) valid() bool {
	return m >= 0 && m < awbModeCount
}

// HardwareCode returns the MMAL_PARAM_AWBMODE_T value for m. A value outside
// the declared modes maps to mmal.ParamAWBModeMax, which the firmware rejects.
func (m AWBMode) HardwareCode() mmal.ParamAWBMode {
	if !m.valid() {
		return mmal.ParamAWBModeMax
	}
	return awbHardwareCodes[m]
}

func (m AWBMode) String() string {
	if !m.valid() {
		return "AWBMode(" + strconv.Itoa(int(m)) + ")"
	}
	return awbModeNames[m]
}
