// Package emu drives the CPU at frame granularity and hands rendered
// frames to whatever display is attached.
package emu

import (
	"errors"

	"github.com/gabalah/gabalah/internal/cpu"
	"github.com/gabalah/gabalah/internal/ram"
	"github.com/gabalah/gabalah/internal/renderer"
	"github.com/gabalah/gabalah/pkg/log"
)

// CyclesPerFrame is how many T-cycles the hardware spends on one
// video frame, 154 scanlines of 456 cycles each.
const CyclesPerFrame = 70224

// Opt configures an Emulator before its first step.
type Opt func(e *Emulator)

// Debug enables instruction tracing.
func Debug() Opt {
	return func(e *Emulator) {
		e.log = log.New(true)
	}
}

// WithLogger replaces the emulator's logger.
func WithLogger(l log.Logger) Opt {
	return func(e *Emulator) {
		e.log = l
	}
}

// Emulator owns a CPU and steps it one frame's worth of cycles at a time.
type Emulator struct {
	cpu *cpu.CPU
	log log.Logger
}

// NewEmulator returns an emulator with the ROM loaded and the CPU pointed
// at the entry point.
func NewEmulator(rom []byte, opts ...Opt) *Emulator {
	e := &Emulator{
		log: log.New(false),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.cpu = cpu.NewCPU(e.log)
	e.cpu.LoadROM(rom)
	return e
}

// CPU exposes the emulator's processor.
func (e *Emulator) CPU() *cpu.CPU {
	return e.cpu
}

// Memory exposes the emulator's address space.
func (e *Emulator) Memory() *ram.RAM {
	return e.cpu.Memory()
}

// Frame steps the CPU for one frame's worth of cycles and renders the
// resulting video memory. Unimplemented instructions are logged and
// skipped; an invalid opcode ends the frame early and is returned, since
// execution has run off into data it cannot interpret.
func (e *Emulator) Frame() ([]uint8, error) {
	cycles := 0
	for cycles < CyclesPerFrame && !e.cpu.Halted() {
		taken, err := e.cpu.Step()
		if err != nil {
			var unimplemented cpu.UnimplementedError
			if errors.As(err, &unimplemented) {
				e.log.Debugf("skipping %s", unimplemented.Instruction)
			} else {
				return renderer.Frame(e.cpu.Memory()), err
			}
		}
		cycles += int(taken)
	}
	return renderer.Frame(e.cpu.Memory()), nil
}

// Run produces frames until the stop channel closes, the CPU halts, or
// execution fails. The error from a failed frame is returned after its
// final frame has been sent.
func (e *Emulator) Run(frames chan<- []uint8, stop <-chan struct{}) error {
	defer close(frames)
	for {
		frame, err := e.Frame()
		select {
		case frames <- frame:
		case <-stop:
			return nil
		}
		if err != nil {
			e.log.Errorf("execution stopped: %v", err)
			return err
		}
		if e.cpu.Halted() {
			e.log.Infof("cpu halted at 0x%04X", e.cpu.PC)
			return nil
		}
	}
}
