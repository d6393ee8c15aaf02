// Command filecheck reports size, NUL-byte count and tail bytes for
// each file given on the command line. A quick truncation and
// corruption check for text assets.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: filecheck <file> [<file> ...]")
		return
	}

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("File not found: %s\n", path)
			continue
		}

		tail := data
		if len(tail) > 100 {
			tail = tail[len(tail)-100:]
		}

		fmt.Printf("File: %s\n", filepath.Base(path))
		fmt.Printf("  Size: %d bytes\n", len(data))
		fmt.Printf("  Null bytes: %d\n", bytes.Count(data, []byte{0x00}))
		fmt.Printf("  Has closing brace near end: %v\n", bytes.Contains(tail, []byte{'}'}))

		if len(data) > 0 {
			last := data
			if len(last) > 20 {
				last = last[len(last)-20:]
			}
			fmt.Printf("  Last 20 bytes: %q\n", last)
		}

		fmt.Println(strings.Repeat("-", 20))
	}
}
