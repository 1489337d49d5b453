// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

// Function identifies a measurement function of the meter. The underlying
// value is the 3-bit function field of status byte 0, which is also the
// digit sent in the F command.
type Function byte

// Measurement functions
const (
	VoltageDC          Function = 1 // DC voltage (volts)
	VoltageAC          Function = 2 // AC voltage (volts)
	ResistanceTwoWire  Function = 3 // 2-wire resistance (ohms)
	ResistanceFourWire Function = 4 // 4-wire resistance (ohms)
	CurrentDC          Function = 5 // DC current (amps)
	CurrentAC          Function = 6 // AC current (amps)
	ResistanceExtended Function = 7 // extended resistance
)

// Functions maps the string keys that can be used in a JSON setup file to
// the Function values. The keys are the 3478A's front-panel mnemonics.
var Functions = map[string]Function{
	"VDC": VoltageDC,
	"VAC": VoltageAC,
	"RTW": ResistanceTwoWire,
	"RFW": ResistanceFourWire,
	"IDC": CurrentDC,
	"IAC": CurrentAC,
	"REX": ResistanceExtended,
}

var functionNames = map[Function]string{
	VoltageDC:          "VDC",
	VoltageAC:          "VAC",
	ResistanceTwoWire:  "RTW",
	ResistanceFourWire: "RFW",
	CurrentDC:          "IDC",
	CurrentAC:          "IAC",
	ResistanceExtended: "REX",
}

func (f Function) String() string {
	return functionNames[f]
}

// TriggerSource identifies a trigger source of the meter. The underlying
// value is the digit sent in the T command. Single and Fast are momentary
// commands; the meter never reports them back in the status block.
type TriggerSource byte

// Trigger sources
const (
	TriggerInternal TriggerSource = 1
	TriggerExternal TriggerSource = 2
	TriggerSingle   TriggerSource = 3
	TriggerHold     TriggerSource = 4
	TriggerFast     TriggerSource = 5
)

// TriggerSources maps the string keys that can be used in a JSON setup
// file to the TriggerSource values.
var TriggerSources = map[string]TriggerSource{
	"internal": TriggerInternal,
	"external": TriggerExternal,
	"single":   TriggerSingle,
	"hold":     TriggerHold,
	"fast":     TriggerFast,
}

var triggerNames = map[TriggerSource]string{
	TriggerInternal: "internal",
	TriggerExternal: "external",
	TriggerSingle:   "single",
	TriggerHold:     "hold",
	TriggerFast:     "fast",
}

func (t TriggerSource) String() string {
	return triggerNames[t]
}

// Range selects a measurement range. Ranges are 3 times powers of ten;
// setting any other positive value picks the smallest range covering it.
// The zero value (AutoRange) selects auto-range.
type Range float64

// AutoRange selects the meter's auto-range mode.
const AutoRange Range = 0

// rangeValues holds the meter's decade range steps, 3x10^exp for
// exponents -3 through 7. Held as literals rather than computed so
// decoded ranges compare exactly.
var rangeValues = [...]float64{
	3e-3, 3e-2, 3e-1, 3, 30, 300, 3e3, 3e4, 3e5, 3e6, 3e7,
}

// rangeValue returns 3x10^exp for any exponent the meter can report.
func rangeValue(exp int) float64 {
	return rangeValues[exp+3]
}

// rangeBracket classifies a requested range value into the signed digit
// sent in the R command. The ladder of inclusive upper bounds matches the
// meter's native encoding; a logarithm here misclassifies values that sit
// exactly on a decade boundary.
func rangeBracket(value float64) int {
	switch {
	case value <= 0.03:
		return -2
	case value <= 0.3:
		return -1
	case value <= 3:
		return 0
	case value <= 30:
		return 1
	case value <= 300:
		return 2
	case value <= 3000:
		return 3
	case value <= 30000:
		return 4
	case value <= 300000:
		return 5
	case value <= 3000000:
		return 6
	}
	return 7
}

// rangeExponentOffset returns the amount to subtract from the raw range
// exponent field for the given function. The meter reuses the same 3-bit
// field with a different zero point per function, so getting this table
// wrong silently corrupts range read-back on non-voltage functions.
func rangeExponentOffset(f Function) int {
	switch f {
	case VoltageDC:
		return 3
	case VoltageAC, CurrentDC, CurrentAC:
		return 2
	}
	return 0
}

// Resolution field values of status byte 0 bits 0-1 to digit counts.
// 1 is 5.5-digit mode, 2 is 4.5-digit mode, anything else 3.5-digit.
func resolutionDigits(field byte) int {
	switch field {
	case 1:
		return 5
	case 2:
		return 4
	}
	return 3
}

// Display text modes
const (
	textModePersistent = 2 // text stays until replaced
	textModeFading     = 3 // display turned off, text fades in ~10 min
)

// Display text payload is restricted to the meter's character generator.
const (
	minTextChar = 32 // space
	maxTextChar = 95 // underscore
)

// The SRQ mask is sent as two octal digits, so only 6 bits are
// expressible.
const maxSRQMask = 077
