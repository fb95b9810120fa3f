//go:build !linux

package serial

import "fmt"

func Discover() (string, error) {
	return "", fmt.Errorf("device discovery not supported on this platform")
}
