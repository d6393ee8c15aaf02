// Command icondiag prints an ASCII rendering of the alpha channel of
// every frame in an .ico container. Useful for eyeballing whether a
// generated launcher icon kept its transparency.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
)

const gridSize = 32

func main() {
	path := "src-tauri/icons/icon.ico"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	frames, err := ico.DecodeAll(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Opening %s\n", path)
	fmt.Printf("Frames: %d\n", len(frames))

	for i, frame := range frames {
		b := frame.Bounds()
		fmt.Printf("\n--- Frame %d size=%dx%d ---\n", i, b.Dx(), b.Dy())

		thumb := resize.Resize(gridSize, gridSize, frame, resize.Lanczos3)

		// . = transparent, # = opaque, + = in between
		for y := 0; y < gridSize; y++ {
			line := make([]byte, 0, gridSize)
			for x := 0; x < gridSize; x++ {
				_, _, _, a := thumb.At(x, y).RGBA()
				a >>= 8
				switch {
				case a < 10:
					line = append(line, '.')
				case a > 240:
					line = append(line, '#')
				default:
					line = append(line, '+')
				}
			}
			fmt.Println(string(line))
		}
	}
}
