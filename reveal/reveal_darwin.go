//go:build darwin

package reveal

import "os/exec"

type finder struct{}

// Reveal selects the file in Finder.
func (finder) Reveal(path string) error {
	return exec.Command("open", "-R", path).Run()
}

func Default() Revealer {
	return finder{}
}
