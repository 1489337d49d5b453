// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Configures an HP 3478A for DC volts on auto-range and prints readings
// until interrupted.
package main

import (
	"flag"
	"log"

	"hz.tools/gpib"

	"github.com/gotmc/hpdmm/hp3478a"
)

func main() {
	board := flag.Int("board", 0, "GPIB board index")
	pad := flag.Int("pad", 23, "meter's primary address")
	count := flag.Int("count", 100, "number of readings to take")
	flag.Parse()

	bus, err := gpib.NewDevice(*board, *pad)
	if err != nil {
		log.Fatalf("Couldn't open GPIB device: %s", err)
	}

	dmm, err := hp3478a.New(bus)
	if err != nil {
		log.Fatalf("Couldn't create meter: %s", err)
	}

	setup := hp3478a.Setup{
		Function:   hp3478a.VoltageDC,
		Range:      hp3478a.AutoRange,
		Resolution: 5,
		Trigger:    hp3478a.TriggerInternal,
		Autozero:   true,
	}
	if err := dmm.Configure(setup); err != nil {
		log.Fatalf("Couldn't configure meter: %s", err)
	}

	f, err := dmm.Function()
	if err != nil {
		log.Fatalf("Couldn't read back function: %s", err)
	}
	log.Printf("Measuring %s", f)

	for i := 0; i < *count; i++ {
		value, err := dmm.Reading()
		if err != nil {
			log.Fatalf("Reading %d failed: %s", i, err)
		}
		log.Printf("%g", value)
	}
}
