package rascam

import (
	"fmt"
	"strconv"
	"strings"
)

// ISO is a sensor sensitivity. Only ISOAuto and the named values below are
// meaningful to the camera; Validate rejects anything else.
type ISO = uint32

const (
	ISOAuto ISO = 0
	ISO100  ISO = 100
	ISO125  ISO = 125
	ISO160  ISO = 160
	ISO200  ISO = 200
	ISO250  ISO = 250
	ISO320  ISO = 320
	ISO400  ISO = 400
	ISO500  ISO = 500
	ISO640  ISO = 640
	ISO800  ISO = 800
	ISO1000 ISO = 1000
	ISO1250 ISO = 1250
	ISO1600 ISO = 1600
	ISO2000 ISO = 2000
	ISO2500 ISO = 2500
	ISO3200 ISO = 3200
)

var isoValues = [...]ISO{
	ISOAuto, ISO100, ISO125, ISO160, ISO200, ISO250, ISO320, ISO400, ISO500,
	ISO640, ISO800, ISO1000, ISO1250, ISO1600, ISO2000, ISO2500, ISO3200,
}

// ISOs returns ISOAuto followed by the named sensitivities in ascending order.
func ISOs() []ISO {
	isos := isoValues
	return isos[:]
}

// ValidISO reports whether v is ISOAuto or one of the named sensitivities.
func ValidISO(v ISO) bool {
	for _, iso := range isoValues {
		if iso == v {
			return true
		}
	}
	return false
}

// ParseISO accepts "auto" in any case or the decimal form of a named value.
func ParseISO(s string) (ISO, error) {
	if strings.EqualFold(s, "auto") {
		return ISOAuto, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || !ValidISO(ISO(v)) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownISO, s)
	}
	return ISO(v), nil
}
