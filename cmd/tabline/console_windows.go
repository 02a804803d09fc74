//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = modkernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = modkernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = modkernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	cpUTF8                          = 65001
)

// initConsole switches stdout to UTF-8 so tab glyphs survive, and enables
// escape sequence processing for the segment colors
func initConsole() {
	procSetConsoleOutputCP.Call(cpUTF8)

	handle, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if handle == 0 {
		return
	}
	var mode uint32
	procGetConsoleMode.Call(handle, uintptr(unsafe.Pointer(&mode)))
	procSetConsoleMode.Call(handle, uintptr(mode|enableVirtualTerminalProcessing))
}
