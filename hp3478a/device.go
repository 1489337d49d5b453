// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

/*
Package hp3478a controls the HP 3478A bench multimeter over GPIB.

The driver is a protocol layer: it encodes settings as the meter's ASCII
commands and decodes the meter's 5-byte binary status block into typed
views. Bus access is delegated to a Transporter, typically a *gpib.Device
from hz.tools/gpib. The bus is half-duplex and the meter answers one
query at a time, so callers needing concurrency must serialize access to
a Device externally.
*/
package hp3478a

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	statusBlockSize = 5
	readBufferSize  = 64
)

// Transporter is the bus access the driver requires: synchronous,
// blocking writes and reads addressed to one configured device. A
// *gpib.Device satisfies it directly.
type Transporter interface {
	Write(p []byte) (n int, err error)
	Read(p []byte) (n int, err error)
}

// Device models an HP 3478A on the bus. Besides the transport handle it
// holds only the two shadow settings the meter does not report back in
// the form they were set: the display text mode and the SRQ mask.
type Device struct {
	bus      Transporter
	textMode int
	srqMask  int
}

// New creates a Device on the given transport and clears the meter's SRQ
// mask so the driver's shadow copy starts in a known state.
func New(bus Transporter) (*Device, error) {
	dev := &Device{
		bus:      bus,
		textMode: textModePersistent,
	}
	if err := dev.sendCommand(commandSRQMask, "00"); err != nil {
		return nil, err
	}
	return dev, nil
}

// sendCommand writes one command letter plus its argument text to the
// bus.
func (dev *Device) sendCommand(cmd command, args string) error {
	msg := string(cmd) + args
	if _, err := dev.bus.Write([]byte(msg)); err != nil {
		return fmt.Errorf("%w: sending %q (%s): %v", ErrTransport, msg, cmd, err)
	}
	return nil
}

// StatusBlock is the meter's 5-byte binary status snapshot: settings
// byte, status bits, SRQ bits, error bits, and the DAC value. It is the
// sole unit of truth read from the meter; every typed view is a pure
// function of it.
type StatusBlock [statusBlockSize]byte

// FetchStatus issues the B command and reads the 5-byte status block.
// The block is fetched fresh on every call; the meter's state can change
// at any time from the front panel, so nothing is cached.
func (dev *Device) FetchStatus() (StatusBlock, error) {
	var block StatusBlock
	if err := dev.sendCommand(commandStatusBlock, ""); err != nil {
		return block, err
	}
	buf := make([]byte, readBufferSize)
	n, err := dev.bus.Read(buf)
	if err != nil {
		return block, fmt.Errorf("%w: reading status block: %v", ErrTransport, err)
	}
	if n < statusBlockSize {
		return block, fmt.Errorf("%w: status block is %d bytes, want %d",
			ErrProtocol, n, statusBlockSize)
	}
	copy(block[:], buf[:statusBlockSize])
	return block, nil
}

// Reading takes one measurement reply off the bus and returns it as a
// float. With the internal trigger running the meter sends readings
// continuously; otherwise trigger one first (see SetTrigger).
func (dev *Device) Reading() (float64, error) {
	buf := make([]byte, readBufferSize)
	n, err := dev.bus.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("%w: reading measurement: %v", ErrTransport, err)
	}
	text := strings.TrimSpace(string(buf[:n]))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: measurement reply %q", ErrParse, text)
	}
	return value, nil
}

// Readings takes count consecutive measurements. It stops at the first
// failure, returning the measurements taken so far along with the error.
func (dev *Device) Readings(count int) ([]float64, error) {
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		value, err := dev.Reading()
		if err != nil {
			return values, err
		}
		values = append(values, value)
	}
	return values, nil
}
