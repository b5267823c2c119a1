// Package sysinfo reports the host operating system for the preflight check.
package sysinfo

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/conn-castle/devsetup/internal/messages"
)

// Info describes the host.
type Info struct {
	OSType          string
	OSRelease       string
	Platform        string
	PlatformVersion string
	Arch            string
}

var hostInfo = host.InfoWithContext

// Detect returns the host OS type and kernel release.
func Detect(ctx context.Context) (Info, error) {
	hi, err := hostInfo(ctx)
	if err != nil {
		return Info{Arch: runtime.GOARCH}, fmt.Errorf(messages.SysinfoDetectFailedFmt, err)
	}
	info := Info{
		OSType:          displayOSType(hi.OS),
		OSRelease:       orUnknown(hi.KernelVersion),
		Platform:        hi.Platform,
		PlatformVersion: hi.PlatformVersion,
		Arch:            runtime.GOARCH,
	}
	return info, nil
}

func displayOSType(os string) string {
	switch os {
	case "darwin":
		return "Darwin"
	case "linux":
		return "Linux"
	case "":
		return messages.SysinfoUnknown
	default:
		return os
	}
}

func orUnknown(s string) string {
	if s == "" {
		return messages.SysinfoUnknown
	}
	return s
}
