package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/kevmo314/go-rascam"
	"github.com/kevmo314/go-rascam/pkg/config"
	"github.com/kevmo314/go-rascam/pkg/formats"
	"github.com/kevmo314/go-rascam/pkg/mmal"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("dump_settings", flag.ContinueOnError)
	fs.String("config", "", "path to a yaml camera config")
	fs.Uint("width", 0, "capture width, 0 for the sensor maximum")
	fs.Uint("height", 0, "capture height, 0 for the sensor maximum")
	fs.String("iso", "auto", "iso sensitivity or auto")
	fs.Uint("sensor-mode", 0, "sensor mode, 0 for automatic")
	fs.Uint("quality", rascam.DefaultQuality, "jpeg quality 0..100")
	fs.Bool("zero-copy", false, "hand frame buffers over without copying")
	fs.String("encoding", "jpeg", "output encoding name or fourcc")
	fs.String("awb", "auto", "auto white balance mode")
	return fs
}

// overridesFromFlags converts the flags that were set on the command line.
// Flags left at their default return nil fields so the config file value is
// kept. awb is nil unless -awb was given.
func overridesFromFlags(fs *flag.FlagSet) (o rascam.Overrides, awb *rascam.AWBMode, err error) {
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		value := f.Value.String()
		switch f.Name {
		case "width":
			o.Width, err = parseUint32(value)
		case "height":
			o.Height, err = parseUint32(value)
		case "sensor-mode":
			o.SensorMode, err = parseUint32(value)
		case "quality":
			o.Quality, err = parseUint32(value)
		case "iso":
			var v rascam.ISO
			if v, err = rascam.ParseISO(value); err == nil {
				o.ISO = &v
			}
		case "zero-copy":
			var v bool
			if v, err = strconv.ParseBool(value); err == nil {
				o.ZeroCopy = &v
			}
		case "encoding":
			var e mmal.Encoding
			if e, err = mmal.ParseEncoding(value); err == nil {
				o.Encoding = &e
			}
		case "awb":
			var mode rascam.AWBMode
			if mode, err = rascam.ParseAWBMode(value); err == nil {
				awb = &mode
			}
		}
		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	return o, awb, err
}

// flag.Uint holds a full uint, so values past 32 bits are rejected here rather
// than truncated.
func parseUint32(s string) (*uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, err
	}
	return rascam.Uint32(uint32(v)), nil
}

func main() {
	fs := newFlagSet()
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	sess := &config.Session{Settings: rascam.DefaultSettings(), AWB: rascam.AWBModeAuto}
	if path := fs.Lookup("config").Value.String(); path != "" {
		log.Printf("Loading camera config from %s", path)
		var err error
		if sess, err = config.Load(path); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	o, awb, err := overridesFromFlags(fs)
	if err != nil {
		log.Fatalf("Invalid flag: %v", err)
	}
	if awb != nil {
		sess.AWB = *awb
	}

	settings := o.Apply(sess.Settings)
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	fcc := settings.Encoding.FourCC()
	guid := formats.FromEncoding(settings.Encoding)
	fmt.Println("=== Camera Settings ===")
	fmt.Printf("  Encoding: %s (FourCC: %s, 0x%08x, GUID: %s)\n",
		settings.Encoding, string(fcc[:]), uint32(settings.Encoding), guid.UUID())
	if name, ok := guid.Name(); ok {
		fmt.Printf("  Media subtype: %s\n", name)
	}
	fmt.Printf("  Resolution: %s x %s\n", orAuto(settings.Width, "max"), orAuto(settings.Height, "max"))
	fmt.Printf("  ISO: %s\n", orAuto(settings.ISO, "auto"))
	fmt.Printf("  Sensor mode: %s\n", orAuto(settings.SensorMode, "auto"))
	fmt.Printf("  Quality: %d\n", settings.Quality)
	fmt.Printf("  Zero copy: %t\n", settings.ZeroCopy)
	fmt.Printf("  Use encoder: %t (deprecated)\n", settings.UseEncoder)
	fmt.Printf("  AWB: %s (MMAL_PARAM_AWBMODE %d)\n", sess.AWB, sess.AWB.HardwareCode())
}

func orAuto(v uint32, sentinel string) string {
	if v == 0 {
		return sentinel
	}
	return fmt.Sprint(v)
}
