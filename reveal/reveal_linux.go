//go:build linux

package reveal

import (
	"os/exec"
	"path/filepath"
)

type xdgOpen struct{}

// Reveal opens the containing directory, xdg-open has no select-file mode.
func (xdgOpen) Reveal(path string) error {
	return exec.Command("xdg-open", filepath.Dir(path)).Run()
}

func Default() Revealer {
	return xdgOpen{}
}
