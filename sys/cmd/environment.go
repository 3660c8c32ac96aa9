package cmd

import (
	"fmt"
	"os/exec"
)

// ValidateEnvironment reports the first external command missing from PATH
func ValidateEnvironment() error {
	for _, cmd := range []string{"ffmpeg"} {
		_, err := exec.LookPath(cmd)
		if err != nil {
			return fmt.Errorf("command %q not found in PATH", cmd)
		}
	}
	return nil
}
