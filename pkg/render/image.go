package render

import (
	"context"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Image is a Height×Width×3 buffer of 8-bit channels, row-major, matching
// the rendered pixel buffer's layout.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// NewImage allocates a zeroed image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// Set writes the RGB channels for pixel (x, y).
func (img *Image) Set(x, y int, r, g, b uint8) {
	i := (y*img.Width + x) * 3
	img.Pix[i] = r
	img.Pix[i+1] = g
	img.Pix[i+2] = b
}

// ProgressFunc is called after each completed row, reporting rows done
// out of the image height. It runs on the worker goroutine that finished
// the row, so implementations should return quickly; pkg/server's
// callback broadcasts every update to its websocket subscribers
// synchronously, without buffering or throttling.
type ProgressFunc func(rowsDone, totalRows int)

// Render fills an image by sphere-tracing one ray per pixel through cam
// against sdf, distributing rows across a worker pool sized to GOMAXPROCS.
// Row order is fixed regardless of goroutine scheduling, so output is
// deterministic and independent of worker count.
func Render(ctx context.Context, sdf SDF, cam Camera, width, height int, progress ProgressFunc) (*Image, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Render",
		"width":    width,
		"height":   height,
	}).Info("starting sphere-trace render")

	img := NewImage(width, height)
	rows := make(chan int, height)
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	workers := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	var completed int
	var mu sync.Mutex
	errCh := make(chan error, 1)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				select {
				case <-ctx.Done():
					select {
					case errCh <- ctx.Err():
					default:
					}
					return
				default:
				}
				renderRow(sdf, cam, img, y)
				mu.Lock()
				completed++
				done := completed
				mu.Unlock()
				if progress != nil {
					progress(done, height)
				}
			}
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	logrus.WithFields(logrus.Fields{
		"function": "Render",
	}).Info("render complete")
	return img, nil
}

func renderRow(sdf SDF, cam Camera, img *Image, y int) {
	for x := 0; x < img.Width; x++ {
		ro, rd := cam.Ray(x, y, img.Width, img.Height)
		t := March(sdf, ro, rd)
		colour := Shade(sdf, ro, rd, t)
		img.Set(x, y, ToByte(colour.X), ToByte(colour.Y), ToByte(colour.Z))
	}
}
