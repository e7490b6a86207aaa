// Command nestest loads an iNES ROM, seeds the program counter (0xC000
// for the canonical nestest diagnostic), and emits one trace line per
// instruction executed — the line format and step count needed to diff
// against a reference nestest.log.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/nes6502/core/console"
	"github.com/nes6502/core/trace"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM image")
	entry := flag.Uint64("entry", 0xC000, "program counter to seed after reset")
	maxSteps := flag.Int("max_steps", 8991, "number of instructions to execute")
	tracePath := flag.String("trace", "", "file to write the trace log to (default: stdout)")
	strict := flag.Bool("strict", false, "fail on undefined opcodes instead of treating them as NOPs")
	flag.Parse()

	if *romPath == "" {
		log.Fatalf("--rom is required")
	}

	raw, err := ioutil.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *romPath, err)
	}

	n, err := console.New(raw, console.Def{Strict: *strict})
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}
	n.Reset()
	n.CPU.PC = uint16(*entry)

	out := os.Stdout
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			log.Fatalf("creating trace file: %v", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	for i := 0; i < *maxSteps; i++ {
		line := trace.Line(n.CPU.PC, n.Bus, n.CPU.A, n.CPU.X, n.CPU.Y, n.CPU.P, n.CPU.S, n.CPU.Cycles)
		fmt.Fprintln(w, line)
		if err := n.Step(); err != nil {
			log.Fatalf("step %d: %v", i, err)
		}
	}
}
