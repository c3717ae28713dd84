package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks question and reports whether the answer was yes. Anything
// other than y or yes, including EOF, is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
