package server

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"

	"github.com/sirupsen/logrus"

	"sdfield/pkg/render"
	"sdfield/pkg/vecmath"
)

// handleJobResult serves a completed job's output: a PNG for render
// jobs, a Wavefront OBJ for mesh jobs. Per SPEC_FULL.md §13, these are
// minimal internal encoders wired only so the async job API's output is
// actually retrievable end to end; they carry no domain logic of their
// own, mirroring cmd/render's writePNG and cmd/mesh's writeOBJ.
func (s *Server) handleJobResult(w http.ResponseWriter, r *http.Request, id string) {
	job, err := s.jobs.Get(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	snap := job.snapshot()
	if snap.Status != JobStatusDone {
		http.Error(w, fmt.Sprintf("job %q is not done (status %q)", id, snap.Status), http.StatusConflict)
		return
	}

	switch snap.Kind {
	case JobKindRender:
		img, ok := job.result().(*render.Image)
		if !ok {
			http.Error(w, "render job has no image result", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := encodePNG(w, img); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "handleJobResult",
				"job_id":   id,
				"error":    err,
			}).Error("failed to encode render result")
		}
	case JobKindMesh:
		verts, ok := job.result().([]vecmath.Vec3)
		if !ok {
			http.Error(w, "mesh job has no vertex result", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "model/obj")
		if err := encodeOBJ(w, verts); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "handleJobResult",
				"job_id":   id,
				"error":    err,
			}).Error("failed to encode mesh result")
		}
	default:
		http.Error(w, fmt.Sprintf("unknown job kind %q", snap.Kind), http.StatusInternalServerError)
	}
}

// encodePNG converts a render.Image's packed RGB buffer to a standard
// library image.RGBA and writes it as PNG.
func encodePNG(w http.ResponseWriter, img *render.Image) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (y*img.Width + x) * 3
			rgba.Set(x, y, color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 255})
		}
	}
	return png.Encode(w, rgba)
}

// encodeOBJ writes the triangle soup as a minimal Wavefront OBJ: one `v`
// line per vertex in emission order, one 1-indexed `f` line per
// triangle, no normals, materials, or vertex welding.
func encodeOBJ(w http.ResponseWriter, vertices []vecmath.Vec3) error {
	for _, v := range vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(vertices); i += 3 {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", i+1, i+2, i+3); err != nil {
			return err
		}
	}
	return nil
}
