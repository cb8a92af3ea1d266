package parser

import "os"

// homeDir wraps os.UserHomeDir, grounded on the teacher's
// parser/util.go ExpandHomeDir helper.
func homeDir() (string, bool) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return dir, true
}
