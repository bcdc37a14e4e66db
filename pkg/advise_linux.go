//go:build linux

package findclone

import (
	"os"

	"golang.org/x/sys/unix"
)

// adviseSequential tells the kernel the whole file is about to be read front to back.
// Failures are logged and otherwise ignored.
func adviseSequential(file *os.File) {
	if err := unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		VerboseLog(3, "fadvise %s: %v", file.Name(), err)
	}
}
