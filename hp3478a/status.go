// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

import "fmt"

// Status block byte positions
const (
	settingsByte = 0 // function, range exponent, resolution
	statusByte   = 1 // trigger and configuration bits
	srqByte      = 2 // serial poll / SRQ bits
	errorByte    = 3 // self-test error bits
	dacByte      = 4 // internal DAC value
)

func bitSet(value byte, bit uint) bool {
	return value&(1<<bit) != 0
}

// Function decodes the measurement function from the status block.
func (block StatusBlock) Function() (Function, error) {
	f := Function(block[settingsByte] >> 5)
	if f < VoltageDC || f > ResistanceExtended {
		return 0, fmt.Errorf("%w: function field %d", ErrDecode, f)
	}
	return f, nil
}

// Range decodes the active range from the status block. The value is
// always 3x10^exp; the raw 3-bit exponent field shares one encoding
// across functions with a per-function zero point, so the active
// function shifts the decode. Auto-range is never reported here: when
// the meter is auto-ranging this is the range it chose, and the
// autorange status bit says so.
func (block StatusBlock) Range() float64 {
	exp := int(block[settingsByte]>>2) & 0x07
	f, err := block.Function()
	if err == nil {
		exp -= rangeExponentOffset(f)
	}
	return rangeValue(exp)
}

// Resolution decodes the displayed digit count (3, 4, or 5) from the
// status block.
func (block StatusBlock) Resolution() int {
	return resolutionDigits(block[settingsByte] & 0x03)
}

// Trigger decodes the trigger source from the status block. The meter
// only exposes two trigger bits, so the decode is lossy: external wins
// over internal, and with neither bit set the meter is holding. Single
// and fast triggers are momentary and never observable here.
func (block StatusBlock) Trigger() TriggerSource {
	switch {
	case bitSet(block[statusByte], 6):
		return TriggerExternal
	case bitSet(block[statusByte], 0):
		return TriggerInternal
	}
	return TriggerHold
}

// DACValue returns the meter's internal DAC byte, the fifth byte of the
// status block.
func (block StatusBlock) DACValue() byte {
	return block[dacByte]
}

// StatusFlags are the configuration bits of status byte 1.
type StatusFlags struct {
	InternalTrigger bool // internal trigger enabled
	Autorange       bool // auto-range enabled
	Autozero        bool // auto-zero enabled
	Line50Hz        bool // set up for 50 Hz line rejection
	FrontInputs     bool // front/rear switch in the front position
	CalRAM          bool // calibration RAM enabled
	ExternalTrigger bool // external trigger enabled
}

// Status decodes the configuration bits of status byte 1. Every byte
// value decodes; bit 7 is unused.
func (block StatusBlock) Status() StatusFlags {
	b := block[statusByte]
	return StatusFlags{
		InternalTrigger: bitSet(b, 0),
		Autorange:       bitSet(b, 1),
		Autozero:        bitSet(b, 2),
		Line50Hz:        bitSet(b, 3),
		FrontInputs:     bitSet(b, 4),
		CalRAM:          bitSet(b, 5),
		ExternalTrigger: bitSet(b, 6),
	}
}

// SRQFlags are the serial poll bits of status byte 2.
type SRQFlags struct {
	ReadingAvailable bool
	SyntaxError      bool
	HardwareError    bool
	KeyboardSRQ      bool
	CalFailed        bool
	PowerOnSRQ       bool
}

// SRQ decodes the serial poll bits of status byte 2. Bits 1 and 6 are
// unused.
func (block StatusBlock) SRQ() SRQFlags {
	b := block[srqByte]
	return SRQFlags{
		ReadingAvailable: bitSet(b, 0),
		SyntaxError:      bitSet(b, 2),
		HardwareError:    bitSet(b, 3),
		KeyboardSRQ:      bitSet(b, 4),
		CalFailed:        bitSet(b, 5),
		PowerOnSRQ:       bitSet(b, 7),
	}
}

// ErrorFlags are the self-test bits of status byte 3. Any bit set means
// the corresponding self-test failed.
type ErrorFlags struct {
	CalRAMChecksum bool
	RAMSelfTest    bool
	ROMSelfTest    bool
	ADCSlope       bool
	ADCSelfTest    bool
	ADCLink        bool
}

// Errors decodes the self-test bits of status byte 3. Bits 6 and 7 are
// unused.
func (block StatusBlock) Errors() ErrorFlags {
	b := block[errorByte]
	return ErrorFlags{
		CalRAMChecksum: bitSet(b, 0),
		RAMSelfTest:    bitSet(b, 1),
		ROMSelfTest:    bitSet(b, 2),
		ADCSlope:       bitSet(b, 3),
		ADCSelfTest:    bitSet(b, 4),
		ADCLink:        bitSet(b, 5),
	}
}

// Healthy reports whether no self-test error bit is set.
func (flags ErrorFlags) Healthy() bool {
	return flags == ErrorFlags{}
}

// The Device-level accessors below fetch a fresh status block per call
// and decode one view of it.

// Function queries the meter's active measurement function.
func (dev *Device) Function() (Function, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return 0, err
	}
	return block.Function()
}

// Range queries the meter's active range.
func (dev *Device) Range() (float64, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return 0, err
	}
	return block.Range(), nil
}

// Resolution queries the meter's displayed digit count.
func (dev *Device) Resolution() (int, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return 0, err
	}
	return block.Resolution(), nil
}

// Trigger queries the meter's trigger source.
func (dev *Device) Trigger() (TriggerSource, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return 0, err
	}
	return block.Trigger(), nil
}

// Autozero queries whether auto-zero is enabled.
func (dev *Device) Autozero() (bool, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return false, err
	}
	return block.Status().Autozero, nil
}

// Status queries the meter's configuration bits.
func (dev *Device) Status() (StatusFlags, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return StatusFlags{}, err
	}
	return block.Status(), nil
}

// SRQ queries the meter's serial poll bits.
func (dev *Device) SRQ() (SRQFlags, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return SRQFlags{}, err
	}
	return block.SRQ(), nil
}

// Errors queries the meter's self-test error bits.
func (dev *Device) Errors() (ErrorFlags, error) {
	block, err := dev.FetchStatus()
	if err != nil {
		return ErrorFlags{}, err
	}
	return block.Errors(), nil
}
