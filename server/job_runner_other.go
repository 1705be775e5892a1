//go:build !unix

package server

import "os/exec"

// killProcessGroupOnCancel keeps the default behaviour of killing the direct child.
// WaitDelay still bounds Run when a forked process holds the output pipes.
func killProcessGroupOnCancel(cmd *exec.Cmd) {}
