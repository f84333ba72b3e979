// Command mesh polygonalises a demo scene to a Wavefront OBJ file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"sdfield/pkg/mesh"
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
	resolution := flag.Int("resolution", 64, "grid resolution per axis")
	extent := flag.Float64("extent", 2, "half-width of the cubical evaluation domain")
	iso := flag.Float64("iso", 0, "isosurface level")
	out := flag.String("out", "mesh.obj", "output OBJ path")
	flag.Parse()

	if err := run(*sceneName, *resolution, float32(*extent), float32(*iso), *out); err != nil {
		logrus.WithError(err).Fatal("mesh generation failed")
	}
}

func run(sceneName string, resolution int, extent, iso float32, out string) error {
	build, ok := demoScenes[sceneName]
	if !ok {
		return fmt.Errorf("unknown scene %q", sceneName)
	}
	sc, err := build()
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	min := vecmath.New(-extent, -extent, -extent)
	max := vecmath.New(extent, extent, extent)
	grid, err := mesh.NewGrid(min, max, resolution, resolution, resolution)
	if err != nil {
		return fmt.Errorf("building grid: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":   "run",
		"scene":      sceneName,
		"resolution": resolution,
	}).Info("polygonalising scene")

	vertices := mesh.Polygonalise(sc, grid, iso)

	logrus.WithFields(logrus.Fields{
		"function":  "run",
		"triangles": len(vertices) / 3,
	}).Info("polygonalisation complete")

	return writeOBJ(vertices, out)
}

// writeOBJ emits the triangle soup as a minimal Wavefront OBJ: vertices in
// emission order followed by one face per triangle, 1-indexed, with no
// normals, materials, or vertex welding. This is glue, not domain logic.
func writeOBJ(vertices []vecmath.Vec3, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return fmt.Errorf("writing vertex: %w", err)
		}
	}
	for i := 0; i+2 < len(vertices); i += 3 {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", i+1, i+2, i+3); err != nil {
			return fmt.Errorf("writing face: %w", err)
		}
	}

	return w.Flush()
}
