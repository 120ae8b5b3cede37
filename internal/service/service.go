// Package service emits the systemd user unit descriptor for the wrapped daemon.
package service

import (
	"fmt"
	"strings"

	"github.com/voxtype/voxgen/internal/options"
)

// GraphicalSessionTarget is the named ordering dependency the descriptor
// states; the host supervisor, not this generator, enforces it.
const GraphicalSessionTarget = "graphical-session.target"

// Descriptor declares how a host supervisor starts and restarts the daemon.
type Descriptor struct {
	Description string
	ExecStart   string
	Restart     string
	RestartSec  int
	After       []string
	PartOf      []string
	WantedBy    []string
}

// Generate builds the descriptor from the validated options and the wrapped
// executable path. Returns nil when service.enable is false; a missing
// descriptor is a valid terminal state, not an error.
func Generate(opts options.Options, wrapperPath string) *Descriptor {
	if !opts.Service.Enable {
		return nil
	}

	return &Descriptor{
		Description: fmt.Sprintf("%s push-to-talk dictation daemon", opts.Package.Name),
		ExecStart:   wrapperPath + " daemon",
		Restart:     "on-failure",
		RestartSec:  opts.Service.RestartSec,
		After:       []string{GraphicalSessionTarget},
		PartOf:      []string{GraphicalSessionTarget},
		WantedBy:    []string{GraphicalSessionTarget},
	}
}

// Unit renders the descriptor as a systemd user unit. Section and key order
// are fixed so identical descriptors serialize to identical bytes.
func (d Descriptor) Unit() []byte {
	var b strings.Builder

	b.WriteString("[Unit]\n")
	b.WriteString("Description=" + d.Description + "\n")
	for _, target := range d.After {
		b.WriteString("After=" + target + "\n")
	}
	for _, target := range d.PartOf {
		b.WriteString("PartOf=" + target + "\n")
	}

	b.WriteString("\n[Service]\n")
	b.WriteString("ExecStart=" + d.ExecStart + "\n")
	b.WriteString("Restart=" + d.Restart + "\n")
	b.WriteString(fmt.Sprintf("RestartSec=%d\n", d.RestartSec))

	b.WriteString("\n[Install]\n")
	for _, target := range d.WantedBy {
		b.WriteString("WantedBy=" + target + "\n")
	}

	return []byte(b.String())
}
