package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// CameraProfile mirrors the renderer's camera parameters: ray origin,
// look-at target, vertical field of view in degrees.
type CameraProfile struct {
	Origin     [3]float32 `yaml:"origin"`
	LookAt     [3]float32 `yaml:"look_at"`
	FOVDegrees float32    `yaml:"fov_degrees"`
}

// GridProfile mirrors the polygonaliser's voxel grid: bounding box and
// per-axis resolution.
type GridProfile struct {
	Min        [3]float32 `yaml:"min"`
	Max        [3]float32 `yaml:"max"`
	Resolution [3]int     `yaml:"resolution"`
}

// Profile bundles a named camera and grid preset plus the image size and
// isovalue to use with them, as loaded from a YAML profile file.
type Profile struct {
	Name        string        `yaml:"name"`
	Camera      CameraProfile `yaml:"camera"`
	Grid        GridProfile   `yaml:"grid"`
	ImageWidth  int           `yaml:"image_width"`
	ImageHeight int           `yaml:"image_height"`
	Iso         float32       `yaml:"iso"`
}

// LoadProfiles loads a list of camera/grid presets from a YAML file.
//
// Parameters:
//   - filename: Path to the YAML file containing profile definitions
//
// Returns:
//   - []Profile: Slice of parsed profile objects
//   - error: File read or YAML parsing errors if any occurred
func LoadProfiles(filename string) ([]Profile, error) {
	logrus.WithFields(logrus.Fields{
		"function": "LoadProfiles",
		"package":  "config",
		"filename": filename,
	}).Debug("loading profiles")

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var profiles []Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "LoadProfiles",
		"package":  "config",
		"count":    len(profiles),
	}).Debug("profiles loaded")

	return profiles, nil
}
