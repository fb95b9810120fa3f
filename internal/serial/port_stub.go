//go:build !linux

package serial

import (
	"fmt"
	"time"
)

func Open(path string, baud int, timeout time.Duration) (Port, error) {
	return nil, fmt.Errorf("serial port not supported on this platform")
}
