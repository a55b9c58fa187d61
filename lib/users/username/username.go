package usernamegen

import (
	"fmt"
	"strconv"
	"strings"
)

const Prefix = "Recruiter"

// Next returns the next auto-generated username given every name already
// issued: max numeric suffix + 1, zero-padded to two digits.
func Next(existing []string) string {
	max := 0
	for _, name := range existing {
		suffix, ok := strings.CutPrefix(name, Prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%02d", Prefix, max+1)
}
