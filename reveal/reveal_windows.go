//go:build windows

package reveal

import "os/exec"

type explorer struct{}

// Reveal selects the file in Explorer. explorer.exe reports a nonzero exit
// code even on success, so only a failure to launch counts as an error.
func (explorer) Reveal(path string) error {
	cmd := exec.Command("explorer", "/select,", path)
	return cmd.Start()
}

func Default() Revealer {
	return explorer{}
}
