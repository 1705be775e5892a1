//go:build unix

package server

import (
	"os/exec"
	"syscall"
)

// killProcessGroupOnCancel starts cmd as a process group leader so cancellation
// reaches every process it forks, not just the direct child.
func killProcessGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
