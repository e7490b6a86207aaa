// Command nesdebug is an interactive terminal stepper over a loaded NES
// ROM: single-step the CPU, watch a hex page of memory with the program
// counter highlighted, and see the decoded instruction under the cursor.
// It never renders a frame — no PPU, no windowing — only text panels.
package main

import (
	"flag"
	"io/ioutil"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nes6502/core/console"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM image")
	entry := flag.Uint64("entry", 0, "program counter to seed after reset (0: use the reset vector)")
	flag.Parse()

	if *romPath == "" {
		log.Fatalf("--rom is required")
	}
	raw, err := ioutil.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading %s: %v", *romPath, err)
	}

	n, err := console.New(raw, console.Def{})
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}
	n.Reset()
	if *entry != 0 {
		n.CPU.PC = uint16(*entry)
	}

	if _, err := tea.NewProgram(newModel(n)).Run(); err != nil {
		log.Fatalf("nesdebug: %v", err)
	}
}
