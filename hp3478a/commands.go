// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

type command byte

// Command letters of the 3478A's ASCII grammar. Arguments, if any, are
// appended directly after the letter.
const (
	commandFunction    command = 'F' // F1..F7
	commandRange       command = 'R' // R-2..R7 or RA
	commandResolution  command = 'N' // N3..N5
	commandTrigger     command = 'T' // T1..T5
	commandAutozero    command = 'Z' // Z0 or Z1
	commandDisplay     command = 'D' // D1, or D<mode><text>\n
	commandSRQMask     command = 'M' // M<two octal digits>
	commandClearSRQ    command = 'K'
	commandCalibrate   command = 'C'
	commandStatusBlock command = 'B' // replies with 5 binary bytes
)

var commands = map[command]string{
	commandFunction:    "Set measurement function",
	commandRange:       "Set range or auto-range",
	commandResolution:  "Set resolution in digits",
	commandTrigger:     "Set trigger source",
	commandAutozero:    "Enable/disable auto-zero",
	commandDisplay:     "Display text or restore normal display",
	commandSRQMask:     "Set SRQ mask",
	commandClearSRQ:    "Clear SRQ bits",
	commandCalibrate:   "Enter calibration mode",
	commandStatusBlock: "Request binary status block",
}

func (c command) String() string {
	return commands[c]
}
