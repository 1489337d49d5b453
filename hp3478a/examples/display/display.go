// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Shows a message on an HP 3478A's front-panel display for a few
// seconds, then restores the normal readout.
package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"hz.tools/gpib"

	"github.com/gotmc/hpdmm/hp3478a"
)

func main() {
	board := flag.Int("board", 0, "GPIB board index")
	pad := flag.Int("pad", 23, "meter's primary address")
	text := flag.String("text", "HELLO", "text to display (ASCII 32-95)")
	flag.Parse()

	bus, err := gpib.NewDevice(*board, *pad)
	if err != nil {
		log.Fatalf("Couldn't open GPIB device: %s", err)
	}

	dmm, err := hp3478a.New(bus)
	if err != nil {
		log.Fatalf("Couldn't create meter: %s", err)
	}

	// The display has no lowercase characters.
	if err := dmm.DisplayText(strings.ToUpper(*text)); err != nil {
		log.Fatalf("Couldn't display text: %s", err)
	}
	time.Sleep(5 * time.Second)
	if err := dmm.NormalDisplay(); err != nil {
		log.Fatalf("Couldn't restore display: %s", err)
	}
}
