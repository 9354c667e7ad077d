// Package reveal asks the host environment to show a file to the operator,
// typically the freshly written dead link report. Implementations are best
// effort, a failed or unsupported reveal never fails a scan.
package reveal

// A Revealer shows a file in the host's file manager.
type Revealer interface {
	Reveal(path string) error
}

// Nop is used where reveal support is missing or disabled.
type Nop struct{}

func (Nop) Reveal(path string) error {
	return nil
}
