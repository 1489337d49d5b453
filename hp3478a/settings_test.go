// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	c "github.com/smartystreets/goconvey/convey"
)

func TestSetFunctionCommands(t *testing.T) {
	testCases := []struct {
		function Function
		expected string
	}{
		{VoltageDC, "F1"},
		{VoltageAC, "F2"},
		{ResistanceTwoWire, "F3"},
		{ResistanceFourWire, "F4"},
		{CurrentDC, "F5"},
		{CurrentAC, "F6"},
		{ResistanceExtended, "F7"},
	}
	for _, tc := range testCases {
		t.Run(tc.function.String(), func(t *testing.T) {
			dev, bus := newTestDevice(t)
			if err := dev.SetFunction(tc.function); err != nil {
				t.Fatalf("SetFunction failed: %v", err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
		})
	}
}

func TestSetFunctionInvalid(t *testing.T) {
	for _, f := range []Function{0, 8} {
		dev, bus := newTestDevice(t)
		err := dev.SetFunction(f)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Function %d: expected ErrValidation, got %v", f, err)
		}
		if len(bus.sent) != 0 {
			t.Errorf("Function %d: command sent despite invalid input: %v", f, bus.sent)
		}
	}
}

func TestSetRangeCommands(t *testing.T) {
	testCases := []struct {
		value    Range
		expected string
	}{
		// Bracket selection uses inclusive upper bounds, so values
		// exactly on a range stay on it and anything above moves up.
		{0.03, "R-2"},
		{0.031, "R-1"},
		{0.3, "R-1"},
		{3, "R0"},
		{3.1, "R1"},
		{30, "R1"},
		{300, "R2"},
		{3000, "R3"},
		{30000, "R4"},
		{300000, "R5"},
		{3000000, "R6"},
		{5000000, "R7"},
		{AutoRange, "RA"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			dev, bus := newTestDevice(t)
			if err := dev.SetRange(tc.value); err != nil {
				t.Fatalf("SetRange failed: %v", err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
		})
	}
}

func TestSetResolutionCommands(t *testing.T) {
	testCases := []struct {
		digits   int
		expected string
		wantErr  bool
	}{
		{3, "N3", false},
		{4, "N4", false},
		{5, "N5", false},
		{2, "", true},
		{6, "", true},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d digits", tc.digits), func(t *testing.T) {
			dev, bus := newTestDevice(t)
			err := dev.SetResolution(tc.digits)
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Expected ErrValidation, got %v", err)
				}
				if len(bus.sent) != 0 {
					t.Errorf("Command sent despite invalid input: %v", bus.sent)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetResolution failed: %v", err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
		})
	}
}

func TestSetTriggerCommands(t *testing.T) {
	testCases := []struct {
		trigger  TriggerSource
		expected string
	}{
		{TriggerInternal, "T1"},
		{TriggerExternal, "T2"},
		{TriggerSingle, "T3"},
		{TriggerHold, "T4"},
		{TriggerFast, "T5"},
	}
	for _, tc := range testCases {
		t.Run(tc.trigger.String(), func(t *testing.T) {
			dev, bus := newTestDevice(t)
			if err := dev.SetTrigger(tc.trigger); err != nil {
				t.Fatalf("SetTrigger failed: %v", err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
		})
	}
	for _, trig := range []TriggerSource{0, 6} {
		dev, bus := newTestDevice(t)
		err := dev.SetTrigger(trig)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Trigger %d: expected ErrValidation, got %v", trig, err)
		}
		if len(bus.sent) != 0 {
			t.Errorf("Trigger %d: command sent despite invalid input: %v", trig, bus.sent)
		}
	}
}

func TestSetAutozeroCommands(t *testing.T) {
	dev, bus := newTestDevice(t)
	if err := dev.SetAutozero(true); err != nil {
		t.Fatalf("SetAutozero failed: %v", err)
	}
	if err := dev.SetAutozero(false); err != nil {
		t.Fatalf("SetAutozero failed: %v", err)
	}
	expected := []string{"Z1", "Z0"}
	for i, cmd := range expected {
		if bus.sent[i] != cmd {
			t.Errorf("Command %d: expected %s, got %s", i, cmd, bus.sent[i])
		}
	}
}

func TestSetSRQMask(t *testing.T) {
	testCases := []struct {
		mask     int
		expected string
	}{
		{0, "M00"},
		{1, "M01"},
		{8, "M10"},
		{0x20, "M40"},
		{63, "M77"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			dev, bus := newTestDevice(t)
			if err := dev.SetSRQMask(tc.mask); err != nil {
				t.Fatalf("SetSRQMask failed: %v", err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
			if dev.SRQMask() != tc.mask {
				t.Errorf("Expected shadow mask %d, got %d", tc.mask, dev.SRQMask())
			}
		})
	}
}

func TestSetSRQMaskInvalid(t *testing.T) {
	for _, mask := range []int{-1, 64, 255} {
		dev, bus := newTestDevice(t)
		err := dev.SetSRQMask(mask)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("Mask %d: expected ErrValidation, got %v", mask, err)
		}
		if len(bus.sent) != 0 {
			t.Errorf("Mask %d: command sent despite invalid input: %v", mask, bus.sent)
		}
		if dev.SRQMask() != 0 {
			t.Errorf("Mask %d: shadow mask changed to %d", mask, dev.SRQMask())
		}
	}
}

func TestSimpleCommands(t *testing.T) {
	testCases := []struct {
		name     string
		call     func(*Device) error
		expected string
	}{
		{"ClearSRQ", (*Device).ClearSRQ, "K"},
		{"Calibrate", (*Device).Calibrate, "C"},
		{"NormalDisplay", (*Device).NormalDisplay, "D1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dev, bus := newTestDevice(t)
			if err := tc.call(dev); err != nil {
				t.Fatalf("%s failed: %v", tc.name, err)
			}
			if len(bus.sent) != 1 || bus.sent[0] != tc.expected {
				t.Errorf("Expected [%s], got %v", tc.expected, bus.sent)
			}
		})
	}
}

func TestDisplayText(t *testing.T) {
	c.Convey("Given a meter with the default text mode", t, func() {
		dev, bus := newTestDevice(t)

		c.Convey("When the text is within the character generator", func() {
			err := dev.DisplayText("HI _")

			c.Convey("Then the D command carries mode 2 and a newline", func() {
				c.So(err, c.ShouldBeNil)
				c.So(bus.sent, c.ShouldResemble, []string{"D2HI _\n"})
			})
		})

		c.Convey("When the text contains a byte below space", func() {
			err := dev.DisplayText("HI\x1f")

			c.Convey("Then the text is rejected before any bus write", func() {
				c.So(errors.Is(err, ErrValidation), c.ShouldBeTrue)
				c.So(bus.sent, c.ShouldBeEmpty)
			})
		})

		c.Convey("When the text contains a byte above underscore", func() {
			err := dev.DisplayText("hi")

			c.Convey("Then the text is rejected before any bus write", func() {
				c.So(errors.Is(err, ErrValidation), c.ShouldBeTrue)
				c.So(bus.sent, c.ShouldBeEmpty)
			})
		})

		c.Convey("When the text mode is switched to fading", func() {
			err := dev.SetTextMode(3)

			c.Convey("Then the next D command carries mode 3", func() {
				c.So(err, c.ShouldBeNil)
				c.So(dev.DisplayText("BYE"), c.ShouldBeNil)
				c.So(bus.sent, c.ShouldResemble, []string{"D3BYE\n"})
			})
		})

		c.Convey("When an unknown text mode is requested", func() {
			err := dev.SetTextMode(4)

			c.Convey("Then the mode is rejected and the shadow state kept", func() {
				c.So(errors.Is(err, ErrValidation), c.ShouldBeTrue)
				c.So(dev.TextMode(), c.ShouldEqual, 2)
			})
		})
	})
}

func TestDisplayTextBoundaryCharacters(t *testing.T) {
	testCases := []struct {
		text  string
		valid bool
	}{
		{" ", true},     // 32, lowest printable
		{"_", true},     // 95, highest printable
		{"\x1f", false}, // 31
		{"`", false},    // 96
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("Byte %#02x", tc.text[0]), func(t *testing.T) {
			dev, _ := newTestDevice(t)
			err := dev.DisplayText(tc.text)
			if tc.valid && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestSetupUnmarshalJSON(t *testing.T) {
	doc := []byte(`{
		"function": "VDC",
		"range": 30,
		"digits": 4,
		"trigger": "internal",
		"autozero": true
	}`)
	var setup Setup
	if err := json.Unmarshal(doc, &setup); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	expected := Setup{
		Function:   VoltageDC,
		Range:      30,
		Resolution: 4,
		Trigger:    TriggerInternal,
		Autozero:   true,
	}
	if setup != expected {
		t.Errorf("Expected %+v, got %+v", expected, setup)
	}
}

func TestSetupUnmarshalAutoRange(t *testing.T) {
	var setup Setup
	if err := json.Unmarshal([]byte(`{"range": "AUTO"}`), &setup); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if setup.Range != AutoRange {
		t.Errorf("Expected AutoRange, got %v", setup.Range)
	}
}

func TestSetupUnmarshalInvalid(t *testing.T) {
	testCases := []string{
		`{"function": "VXX"}`,
		`{"function": 1}`,
		`{"trigger": "bogus"}`,
		`{"range": "FULL"}`,
		`{"range": true}`,
	}
	for _, doc := range testCases {
		var setup Setup
		if err := json.Unmarshal([]byte(doc), &setup); err == nil {
			t.Errorf("Expected error unmarshaling %s", doc)
		}
	}
}

func TestConfigure(t *testing.T) {
	dev, bus := newTestDevice(t)
	setup := Setup{
		Function:   VoltageDC,
		Range:      AutoRange,
		Resolution: 5,
		Trigger:    TriggerInternal,
		Autozero:   true,
	}
	if err := dev.Configure(setup); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	expected := []string{"F1", "RA", "N5", "T1", "Z1"}
	if len(bus.sent) != len(expected) {
		t.Fatalf("Expected %d commands, got %v", len(expected), bus.sent)
	}
	for i, cmd := range expected {
		if bus.sent[i] != cmd {
			t.Errorf("Command %d: expected %s, got %s", i, cmd, bus.sent[i])
		}
	}
}

func TestConfigureSkipsUnsetFields(t *testing.T) {
	dev, bus := newTestDevice(t)
	if err := dev.Configure(Setup{Range: 300}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	expected := []string{"R2", "Z0"}
	if len(bus.sent) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, bus.sent)
	}
	for i, cmd := range expected {
		if bus.sent[i] != cmd {
			t.Errorf("Command %d: expected %s, got %s", i, cmd, bus.sent[i])
		}
	}
}
