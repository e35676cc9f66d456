package skytracer

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
)

// Frame is a rendered image, row-major, top row first.
type Frame struct {
	Width, Height int
	Pix           []Color
}

func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]Color, width*height)}
}

func (f *Frame) At(i, j int) Color { return f.Pix[j*f.Width+i] }

// renderRow fills row j. Rows share nothing but the read-only camera.
func renderRow(cam *Camera, f *Frame, j int) {
	row := f.Pix[j*f.Width : (j+1)*f.Width]
	for i := range row {
		r := cam.RayFor(i, j)
		row[i] = RayColor(r)
		if Debug && i == 0 {
			logRay("row", skyCategory(r), r, row[i])
		}
	}
}

// Render computes every pixel. Rows are split across workers goroutines
// (<= 0 means runtime.NumCPU()); the result does not depend on the count.
func Render(cam *Camera, workers int) *Frame {
	f := NewFrame(cam.ImageWidth, cam.ImageHeight)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imax(1, min(workers, f.Height))

	var (
		next    int64 = -1
		done    int64
		wg      sync.WaitGroup
		printMu sync.Mutex
	)
	nextPrint := int64(imax(1, f.Height/100)) // ~1%

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				j := int(atomic.AddInt64(&next, 1))
				if j >= f.Height {
					return
				}
				renderRow(cam, f, j)
				finished := atomic.AddInt64(&done, 1)
				if Progress && finished%nextPrint == 0 {
					printMu.Lock()
					fmt.Fprintf(Diag, "[PROGRESS] %.2f%%\n", Real(finished)*100/Real(f.Height))
					printMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	DebugLog("Rendered %dx%d with %d workers", f.Width, f.Height, workers)
	return f
}

// WritePPM writes f as an ASCII P3 image: header, then one "R G B" line per
// pixel, rows top to bottom, columns left to right.
func WritePPM(w io.Writer, f *Frame, clamp bool) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", f.Width, f.Height, MaxChannel); err != nil {
		return fmt.Errorf("write ppm header: %w", err)
	}
	write := WriteColor
	if !clamp {
		write = WriteColorUnclamped
	}
	for _, c := range f.Pix {
		if err := write(bw, c); err != nil {
			return fmt.Errorf("write ppm pixel: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush ppm: %w", err)
	}
	return nil
}

// RenderTo renders cam and streams the PPM to w.
func RenderTo(w io.Writer, cam *Camera, workers int, clamp bool) (*Frame, error) {
	f := Render(cam, workers)
	return f, WritePPM(w, f, clamp)
}
