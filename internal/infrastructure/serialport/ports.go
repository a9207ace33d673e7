// Package serialport discovers attached USB serial devices and matches them
// to board targets by USB VID:PID or product description.
package serialport

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// Port describes one attached serial device.
type Port struct {
	Device      string
	Description string
	VIDPID      string
}

// profile lists the USB identities a target's debug/console bridge shows up
// with. ESP32-C3/S3 boards carry a CP210x bridge, the STM32F746G Discovery
// an on-board ST-Link.
type profile struct {
	ids          []string
	descriptions []string
}

var profiles = map[string]profile{
	"esp32":            {ids: []string{"10C4:EA60"}, descriptions: []string{"CP210", "Silicon Labs"}},
	"esp32c3":          {ids: []string{"10C4:EA60"}, descriptions: []string{"CP210", "Silicon Labs"}},
	"esp32s3":          {ids: []string{"10C4:EA60"}, descriptions: []string{"CP210", "Silicon Labs"}},
	"stm32f746g-disco": {ids: []string{"0483:374B"}, descriptions: []string{"STLink", "ST-Link"}},
}

// List enumerates attached serial ports with USB details.
func List() ([]Port, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	ports := make([]Port, 0, len(details))
	for _, d := range details {
		p := Port{Device: d.Name, Description: d.Product}
		if d.IsUSB {
			p.VIDPID = strings.ToUpper(d.VID + ":" + d.PID)
		}
		ports = append(ports, p)
	}
	return ports, nil
}

// MatchTarget filters ports down to the ones whose USB identity matches the
// target's known bridge hardware. An unknown target matches nothing.
func MatchTarget(ports []Port, target string) []Port {
	prof, ok := profiles[strings.ToLower(target)]
	if !ok {
		return nil
	}
	var matched []Port
	for _, p := range ports {
		if matches(p, prof) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p Port, prof profile) bool {
	for _, id := range prof.ids {
		if p.VIDPID == id {
			return true
		}
	}
	for _, desc := range prof.descriptions {
		if desc != "" && strings.Contains(p.Description, desc) {
			return true
		}
	}
	return false
}
