// Package irq defines the basic interfaces for working
// with 6502 family interrupts. The CPU keeps a pending mask which
// components that generate interrupts can raise without cross coupling
// component logic.
// NOTE: Even though chips make a distinction between level and edge type
//       interrupts the interfaces here don't matter and assume implementors
//       simply account for this in clock cycle management.
package irq

// Mask is a set of pending interrupt requests.
type Mask uint8

const (
	Reset Mask = 1 << iota // Reset line pulled low.
	NMI                    // Non maskable interrupt.
	IRQ                    // Standard maskable interrupt.
)

// Sender defines the interface for an interrupt source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}
