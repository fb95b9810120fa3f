//go:build linux

package serial

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The device enumerates as a CP210x USB-serial bridge with this vendor and
// product id (10C4:EA60).
const cp210xModalias = "v10c4pea60"

const cp210xDriverDir = "/sys/bus/usb/drivers/cp210x"

// Discover walks the cp210x driver's sysfs entries looking for a bound
// interface whose modalias matches the device, and resolves its tty node.
func Discover() (string, error) {
	return discoverIn(cp210xDriverDir)
}

func discoverIn(driverDir string) (string, error) {
	entries, err := os.ReadDir(driverDir)
	if err != nil {
		return "", fmt.Errorf("no cp210x device connected: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if len(name) == 0 || name[0] < '0' || name[0] > '9' {
			continue
		}
		ifaceDir := filepath.Join(driverDir, name)
		raw, err := os.ReadFile(filepath.Join(ifaceDir, "modalias"))
		if err != nil {
			continue
		}
		if !modaliasMatches(string(raw)) {
			continue
		}
		tty, err := findTTY(ifaceDir)
		if err != nil {
			continue
		}
		return "/dev/" + tty, nil
	}
	return "", fmt.Errorf("no matching cp210x device found under %s", driverDir)
}

func modaliasMatches(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))
		if strings.HasPrefix(line, "usb:") && strings.HasPrefix(line[4:], cp210xModalias) {
			return true
		}
	}
	return false
}

func findTTY(ifaceDir string) (string, error) {
	entries, err := os.ReadDir(ifaceDir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "ttyUSB") {
			return e.Name(), nil
		}
	}
	return "", fmt.Errorf("no ttyUSB node under %s", ifaceDir)
}
