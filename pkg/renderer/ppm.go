package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
)

// WritePPM emits the framebuffer as a plain-text P3 PPM image: the header,
// then one "r g b" line per pixel in row-major order from the image top.
// The framebuffer is expected to hold gamma-corrected values in [0, 0.999]
// as produced by RenderPass; quantization is floor(256 * v).
func WritePPM(w io.Writer, framebuffer []core.Vec3, width, height int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, c := range framebuffer {
		ir := int(256 * c.X)
		ig := int(256 * c.Y)
		ib := int(256 * c.Z)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
			return err
		}
	}

	return bw.Flush()
}
