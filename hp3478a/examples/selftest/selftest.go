// Copyright (c) 2026 The hpdmm developers. All rights reserved.
// Project site: https://github.com/gotmc/hpdmm
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Dumps an HP 3478A's status, SRQ, and self-test error bits.
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
	flag.Parse()

	bus, err := gpib.NewDevice(*board, *pad)
	if err != nil {
		log.Fatalf("Couldn't open GPIB device: %s", err)
	}

	dmm, err := hp3478a.New(bus)
	if err != nil {
		log.Fatalf("Couldn't create meter: %s", err)
	}

	block, err := dmm.FetchStatus()
	if err != nil {
		log.Fatalf("Couldn't fetch status block: %s", err)
	}

	if f, err := block.Function(); err != nil {
		log.Printf("Function: %s", err)
	} else {
		log.Printf("Function: %s, range %g, %d digits",
			f, block.Range(), block.Resolution())
	}
	log.Printf("Trigger: %s", block.Trigger())
	log.Printf("Status: %+v", block.Status())
	log.Printf("SRQ: %+v", block.SRQ())

	errFlags := block.Errors()
	if errFlags.Healthy() {
		log.Print("Self-test: no errors")
	} else {
		log.Printf("Self-test errors: %+v", errFlags)
	}
	log.Printf("DAC value: %d", block.DACValue())
}
