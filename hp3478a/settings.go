// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// SetFunction sets the measurement function.
func (dev *Device) SetFunction(f Function) error {
	if f < VoltageDC || f > ResistanceExtended {
		return fmt.Errorf("%w: function %d", ErrValidation, f)
	}
	return dev.sendCommand(commandFunction, strconv.Itoa(int(f)))
}

// SetRange sets the measurement range, or auto-range for AutoRange. A
// numeric value selects the smallest range covering it. Note range
// set and read-back are not symmetric: the meter always reports the
// range it is on as 3x10^exp, never the value requested here and never
// auto-range.
func (dev *Device) SetRange(r Range) error {
	if r == AutoRange {
		return dev.sendCommand(commandRange, "A")
	}
	return dev.sendCommand(commandRange, strconv.Itoa(rangeBracket(float64(r))))
}

// SetResolution sets the displayed digit count, 3 through 5. Higher
// resolutions slow the conversion rate.
func (dev *Device) SetResolution(digits int) error {
	if digits < 3 || digits > 5 {
		return fmt.Errorf("%w: resolution %d digits, want 3-5", ErrValidation, digits)
	}
	return dev.sendCommand(commandResolution, strconv.Itoa(digits))
}

// SetTrigger sets the trigger source. TriggerSingle and TriggerFast
// trigger one conversion immediately and cannot be read back.
func (dev *Device) SetTrigger(t TriggerSource) error {
	if t < TriggerInternal || t > TriggerFast {
		return fmt.Errorf("%w: trigger source %d", ErrValidation, t)
	}
	return dev.sendCommand(commandTrigger, strconv.Itoa(int(t)))
}

// SetAutozero enables or disables auto-zero.
func (dev *Device) SetAutozero(on bool) error {
	if on {
		return dev.sendCommand(commandAutozero, "1")
	}
	return dev.sendCommand(commandAutozero, "0")
}

// DisplayText shows text on the meter's display using the current text
// mode. The character generator covers ASCII 32 through 95 only.
func (dev *Device) DisplayText(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] < minTextChar || text[i] > maxTextChar {
			return fmt.Errorf("%w: display text byte %d is %#x, want ASCII %d-%d",
				ErrValidation, i, text[i], minTextChar, maxTextChar)
		}
	}
	return dev.sendCommand(commandDisplay, strconv.Itoa(dev.textMode)+text+"\n")
}

// NormalDisplay returns the display to showing readings. Use after
// DisplayText.
func (dev *Device) NormalDisplay() error {
	return dev.sendCommand(commandDisplay, "1")
}

// TextMode returns the display text mode DisplayText will use.
func (dev *Device) TextMode() int {
	return dev.textMode
}

// SetTextMode selects the display text mode: 2 shows text until
// replaced, 3 turns the display off so the text fades after about ten
// minutes. The mode is shadow state; nothing is sent to the meter until
// the next DisplayText.
func (dev *Device) SetTextMode(mode int) error {
	if mode < textModePersistent || mode > textModeFading {
		return fmt.Errorf("%w: text mode %d, want 2 or 3", ErrValidation, mode)
	}
	dev.textMode = mode
	return nil
}

// SRQMask returns the last SRQ mask written. The meter has no readable
// mirror of the mask as set, so this is shadow state.
func (dev *Device) SRQMask() int {
	return dev.srqMask
}

// SetSRQMask sets which conditions raise a service request. The M
// command takes two octal digits, so only masks 0 through 077 are
// expressible.
func (dev *Device) SetSRQMask(mask int) error {
	if mask < 0 || mask > maxSRQMask {
		return fmt.Errorf("%w: SRQ mask %d, want 0-%d", ErrValidation, mask, maxSRQMask)
	}
	if err := dev.sendCommand(commandSRQMask, fmt.Sprintf("%02o", mask)); err != nil {
		return err
	}
	dev.srqMask = mask
	return nil
}

// ClearSRQ clears the meter's SRQ bits.
func (dev *Device) ClearSRQ() error {
	return dev.sendCommand(commandClearSRQ, "")
}

// Calibrate puts the meter into calibration mode.
func (dev *Device) Calibrate() error {
	return dev.sendCommand(commandCalibrate, "")
}

// Setup describes a complete meter configuration, suitable for loading
// from a JSON file.
type Setup struct {
	Function   Function      `json:"function"`
	Range      Range         `json:"range"`
	Resolution int           `json:"digits"`
	Trigger    TriggerSource `json:"trigger"`
	Autozero   bool          `json:"autozero"`
}

// UnmarshalJSON implements the Unmarshaler interface for Function by
// taking a string that matches a key in the Functions map and finding
// the appropriate Function value.
func (f *Function) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("function should be a string, got %s", data)
	}
	got, ok := Functions[s]
	if !ok {
		return fmt.Errorf("invalid Function %q", s)
	}
	*f = got
	return nil
}

// UnmarshalJSON implements the Unmarshaler interface for TriggerSource
// by taking a string that matches a key in the TriggerSources map and
// finding the appropriate TriggerSource value.
func (t *TriggerSource) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("trigger should be a string, got %s", data)
	}
	got, ok := TriggerSources[s]
	if !ok {
		return fmt.Errorf("invalid TriggerSource %q", s)
	}
	*t = got
	return nil
}

// UnmarshalJSON implements the Unmarshaler interface for Range by
// accepting either the string "AUTO" or a number.
func (r *Range) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "AUTO" {
			return fmt.Errorf("invalid Range %q", s)
		}
		*r = AutoRange
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("range should be a number or \"AUTO\", got %s", data)
	}
	*r = Range(value)
	return nil
}

// Configure applies a Setup to the meter in one pass. Zero-valued
// Function, Resolution, and Trigger fields are left untouched; a
// zero-valued Range selects auto-range. Autozero is always applied.
func (dev *Device) Configure(s Setup) error {
	if s.Function != 0 {
		if err := dev.SetFunction(s.Function); err != nil {
			return err
		}
	}
	if err := dev.SetRange(s.Range); err != nil {
		return err
	}
	if s.Resolution != 0 {
		if err := dev.SetResolution(s.Resolution); err != nil {
			return err
		}
	}
	if s.Trigger != 0 {
		if err := dev.SetTrigger(s.Trigger); err != nil {
			return err
		}
	}
	return dev.SetAutozero(s.Autozero)
}
