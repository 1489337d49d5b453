// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package hp3478a

import "errors"

// Errors returned by functions and methods in this package. Every error
// returned wraps exactly one of these sentinels, so callers can classify
// failures with errors.Is while still seeing per-call context in the
// message.
var (
	// ErrTransport wraps bus communication failures surfaced by the
	// Transporter. The driver never retries them.
	ErrTransport = errors.New("bus transport failure")

	// ErrProtocol reports a reply that arrived but has the wrong shape,
	// such as a status block shorter than 5 bytes.
	ErrProtocol = errors.New("malformed reply")

	// ErrDecode reports a status field whose value is outside its defined
	// enumeration.
	ErrDecode = errors.New("field outside enumeration")

	// ErrParse reports a measurement reply that does not parse as a
	// floating-point number.
	ErrParse = errors.New("unparseable reading")

	// ErrValidation reports a caller-supplied setting that is out of
	// range. Validation happens before any bus write, so no partial
	// command is ever sent for invalid input.
	ErrValidation = errors.New("invalid setting")
)
