//go:build !linux

package findclone

import "os"

func adviseSequential(*os.File) {}
