package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/kevmo314/go-rascam"
	"github.com/kevmo314/go-rascam/pkg/config"
	"github.com/kevmo314/go-rascam/pkg/formats"
	"github.com/kevmo314/go-rascam/pkg/mmal"
	"github.com/rivo/tview"
)

func main() {
	path := flag.String("config", "", "path to a yaml camera config")
	flag.Parse()

	sess := &config.Session{Settings: rascam.DefaultSettings(), AWB: rascam.AWBModeAuto}
	if *path != "" {
		var err error
		if sess, err = config.Load(*path); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	app := tview.NewApplication()

	awbModes := tview.NewList()
	awbModes.SetBorder(true).SetTitle("AWB Modes")

	settingsTable := tview.NewTable()
	settingsTable.SetBorder(true).SetTitle("Settings")

	form := tview.NewForm()
	form.SetBorder(true).SetTitle("Overrides")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")
	logText.SetChangedFunc(func() { app.Draw() })

	log.SetOutput(logText)

	current := sess.Settings
	awb := sess.AWB
	refresh := func() {
		renderSettings(settingsTable, current, awb)
	}

	for i, mode := range rascam.AWBModes() {
		awbModes.AddItem(mode.String(), fmt.Sprintf("MMAL_PARAM_AWBMODE %d", mode.HardwareCode()), 0, func() {
			awb = mode
			log.Printf("AWB mode set to %s", mode)
			refresh()
		})
		if mode == awb {
			awbModes.SetCurrentItem(i)
		}
	}

	// edits are collected as text and only applied when the form is submitted
	width := strconv.FormatUint(uint64(current.Width), 10)
	height := strconv.FormatUint(uint64(current.Height), 10)
	sensorMode := strconv.FormatUint(uint64(current.SensorMode), 10)
	quality := strconv.FormatUint(uint64(current.Quality), 10)
	iso := current.ISO
	encoding := current.Encoding
	zeroCopy := current.ZeroCopy

	isoOptions, isoIndex := isoDropDown(current.ISO)
	encodingOptions, encodingIndex := encodingDropDown(current.Encoding)

	form.
		AddInputField("Width", width, 8, tview.InputFieldInteger, func(text string) { width = text }).
		AddInputField("Height", height, 8, tview.InputFieldInteger, func(text string) { height = text }).
		AddDropDown("ISO", isoOptions, isoIndex, func(option string, index int) {
			if index >= 0 {
				iso = rascam.ISOs()[index]
			}
		}).
		AddInputField("Sensor mode", sensorMode, 4, tview.InputFieldInteger, func(text string) { sensorMode = text }).
		AddInputField("Quality", quality, 4, tview.InputFieldInteger, func(text string) { quality = text }).
		AddDropDown("Encoding", encodingOptions, encodingIndex, func(option string, index int) {
			if index >= 0 {
				encoding = mmal.Encodings()[index]
			}
		}).
		AddCheckbox("Zero copy", zeroCopy, func(checked bool) { zeroCopy = checked }).
		AddButton("Apply", func() {
			o := rascam.Overrides{
				ISO:      rascam.Uint32(iso),
				Encoding: rascam.Encoding(encoding),
				ZeroCopy: rascam.Bool(zeroCopy),
			}
			for _, field := range []struct {
				name string
				text string
				dst  **uint32
			}{
				{"width", width, &o.Width},
				{"height", height, &o.Height},
				{"sensor mode", sensorMode, &o.SensorMode},
				{"quality", quality, &o.Quality},
			} {
				v, err := strconv.ParseUint(field.text, 10, 32)
				if err != nil {
					log.Printf("Invalid %s %q: %v", field.name, field.text, err)
					return
				}
				*field.dst = rascam.Uint32(uint32(v))
			}
			next := o.Apply(sess.Settings)
			if err := next.Validate(); err != nil {
				log.Printf("Rejected settings: %v", err)
				return
			}
			current = next
			log.Printf("Applied settings: %dx%d %s quality %d", current.Width, current.Height, current.Encoding, current.Quality)
			refresh()
		})

	refresh()

	columns := tview.NewFlex().
		AddItem(awbModes, 0, 1, true).
		AddItem(form, 0, 2, false).
		AddItem(settingsTable, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(logText, 12, 0, false)

	focus := []tview.Primitive{awbModes, form, settingsTable}
	focused := 0
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyCtrlN:
			focused = (focused + 1) % len(focus)
			app.SetFocus(focus[focused])
			return nil
		}
		return event
	})

	if err := app.SetRoot(root, true).EnableMouse(true).Run(); err != nil {
		panic(err)
	}
}

func isoDropDown(selected rascam.ISO) ([]string, int) {
	var options []string
	index := 0
	for i, iso := range rascam.ISOs() {
		if iso == rascam.ISOAuto {
			options = append(options, "auto")
		} else {
			options = append(options, strconv.FormatUint(uint64(iso), 10))
		}
		if iso == selected {
			index = i
		}
	}
	return options, index
}

func encodingDropDown(selected mmal.Encoding) ([]string, int) {
	var options []string
	index := 0
	for i, e := range mmal.Encodings() {
		options = append(options, e.String())
		if e == selected {
			index = i
		}
	}
	return options, index
}

func renderSettings(table *tview.Table, s rascam.CameraSettings, awb rascam.AWBMode) {
	fcc := s.Encoding.FourCC()
	guid := formats.FromEncoding(s.Encoding)
	guidText := guid.UUID().String()
	if name, ok := guid.Name(); ok {
		guidText += " (" + name + ")"
	}
	rows := [][2]string{
		{"Encoding", fmt.Sprintf("%s (%s)", s.Encoding, string(fcc[:]))},
		{"GUID", guidText},
		{"Width", sentinel(s.Width, "max")},
		{"Height", sentinel(s.Height, "max")},
		{"ISO", sentinel(s.ISO, "auto")},
		{"Sensor mode", sentinel(s.SensorMode, "auto")},
		{"Quality", strconv.FormatUint(uint64(s.Quality), 10)},
		{"Zero copy", strconv.FormatBool(s.ZeroCopy)},
		{"Use encoder", strconv.FormatBool(s.UseEncoder) + " (deprecated)"},
		{"AWB", fmt.Sprintf("%s (%d)", awb, awb.HardwareCode())},
	}
	table.Clear()
	for i, row := range rows {
		table.SetCell(i, 0, tview.NewTableCell(row[0]).SetTextColor(tcell.ColorYellow))
		table.SetCell(i, 1, tview.NewTableCell(row[1]))
	}
}

func sentinel(v uint32, name string) string {
	if v == 0 {
		return name
	}
	return strconv.FormatUint(uint64(v), 10)
}
