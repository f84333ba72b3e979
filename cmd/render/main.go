// Command render sphere-traces a demo scene to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/sirupsen/logrus"

	"sdfield/pkg/render"
	"sdfield/pkg/scene"
	"sdfield/pkg/vecmath"
)

var demoScenes = map[string]func() (*scene.Scene, error){
	"sphere":       scene.DemoSphere,
	"two-sphere":   scene.DemoTwoSphereUnion,
	"organic-blob": scene.DemoOrganicBlob,
	"twisted-tree": scene.DemoTwistedTree,
}

func main() {
	sceneName := flag.String("scene", "sphere", "demo scene name: sphere, two-sphere, organic-blob, twisted-tree")
	width := flag.Int("width", 512, "image width in pixels")
	height := flag.Int("height", 512, "image height in pixels")
	out := flag.String("out", "render.png", "output PNG path")
	fov := flag.Float64("fov", 60, "camera vertical field of view in degrees")
	flag.Parse()

	if err := run(*sceneName, *width, *height, float32(*fov), *out); err != nil {
		logrus.WithError(err).Fatal("render failed")
	}
}

func run(sceneName string, width, height int, fov float32, out string) error {
	build, ok := demoScenes[sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q", sceneName)
	}
	sc, err := build()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	cam := render.Camera{Origin: vecmath.New(0, 0, 3), LookAt: vecmath.Vec3{}, FOVDegrees: fov}

	img, err := render.Render(context.Background(), sc, cam, width, height, func(done, total int) {
		logrus.WithFields(logrus.Fields{
			"function": "run",
			"done":     done,
			"total":    total,
		}).Debug("render progress")
	})
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	return writePNG(img, out)
}

// writePNG is the glue that converts the render kernel's internal Image
// buffer to a standard library image.RGBA for encoding; it carries no
// domain logic of its own.
func writePNG(img *render.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * 3
			rgba.Set(x, y, color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255})
		}
	}

	return png.Encode(f, rgba)
}
