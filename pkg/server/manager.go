package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/time/rate"

	"sdfield/pkg/config"
	"sdfield/pkg/mesh"
	"sdfield/pkg/render"
	"sdfield/pkg/scene"
	"sdfield/pkg/vecmath"
)

// sceneByName resolves the demo scene registry from SPEC_FULL.md §12;
// this stands in for a full scene-file parser, which is out of scope
// out of scope for this service (no scene-file format).
var sceneByName = map[string]func() (*scene.Scene, error){
	"sphere":       scene.DemoSphere,
	"two-sphere":   scene.DemoTwoSphereUnion,
	"organic-blob": scene.DemoOrganicBlob,
	"twisted-tree": scene.DemoTwistedTree,
}

// SceneNames returns the registered demo scene names in a fixed,
// alphabetical order, for the server's scene-listing endpoint. Go map
// iteration order is randomised, so callers that need a stable response
// body go through this instead of ranging over sceneByName directly.
func SceneNames() []string {
	names := maps.Keys(sceneByName)
	slices.Sort(names)
	return names
}

// JobManager queues and executes render and mesh jobs, throttled by a
// token-bucket rate limiter and bounded to a fixed concurrency.
type JobManager struct {
	cfg     *config.Config
	metrics *render.Metrics

	limiter *rate.Limiter
	sem     chan struct{}

	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewJobManager constructs a job manager from server configuration.
func NewJobManager(cfg *config.Config) *JobManager {
	return &JobManager{
		cfg:     cfg,
		metrics: render.NewMetrics(),
		limiter: rate.NewLimiter(rate.Limit(cfg.JobRateLimitPerSecond), cfg.JobRateLimitBurst),
		sem:     make(chan struct{}, cfg.MaxConcurrentJobs),
		jobs:    make(map[string]*Job),
	}
}

// Submit enqueues a new job for the named demo scene, rejecting the
// request if the manager's single, shared submission rate is exceeded. The submitting
// request's context is used only to decide whether to accept the job;
// execution itself runs detached from it; per spec.md §5, a kernel run
// to completion once started and does not abort when an HTTP client
// disconnects or its request handler returns.
func (m *JobManager) Submit(ctx context.Context, kind JobKind, sceneName string) (*Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := sceneByName[sceneName]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSceneName, sceneName)
	}
	if !m.limiter.Allow() {
		return nil, fmt.Errorf("server: job submission rate exceeded")
	}

	job := newJob(uuid.NewString(), kind, sceneName)

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function": "Submit",
		"job_id":   job.ID,
		"kind":     kind,
		"scene":    sceneName,
	}).Info("job submitted")

	go m.run(context.Background(), job)
	return job, nil
}

// Get returns the job with the given ID.
func (m *JobManager) Get(id string) (*Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (m *JobManager) run(ctx context.Context, job *Job) {
	select {
	case m.sem <- struct{}{}:
		defer func() { <-m.sem }()
	case <-ctx.Done():
		job.setFailed(ctx.Err())
		return
	}

	start := time.Now()
	sc, err := sceneByName[job.SceneName]()
	if err != nil {
		job.setFailed(err)
		m.metrics.RecordJob("error", time.Since(start))
		return
	}

	switch job.Kind {
	case JobKindRender:
		m.runRender(ctx, job, sc, start)
	case JobKindMesh:
		m.runMesh(job, sc, start)
	}
}

func (m *JobManager) runRender(ctx context.Context, job *Job, sc *scene.Scene, start time.Time) {
	job.setRunning(m.cfg.ImageHeight)
	cam := render.Camera{Origin: vecmath.New(0, 0, 3), LookAt: vecmath.Vec3{}, FOVDegrees: 60}

	img, err := render.Render(ctx, sc, cam, m.cfg.ImageWidth, m.cfg.ImageHeight, func(done, total int) {
		job.setProgress(done)
		m.metrics.RecordRow()
	})
	if err != nil {
		job.setFailed(err)
		m.metrics.RecordJob("cancelled", time.Since(start))
		return
	}
	job.setDone(img)
	m.metrics.RecordJob("success", time.Since(start))
}

func (m *JobManager) runMesh(job *Job, sc *scene.Scene, start time.Time) {
	r := m.cfg.GridResolution
	grid, err := mesh.NewGrid(vecmath.New(-2, -2, -2), vecmath.New(2, 2, 2), r, r, r)
	if err != nil {
		job.setFailed(err)
		m.metrics.RecordJob("error", time.Since(start))
		return
	}

	job.setRunning(r)
	verts := mesh.Polygonalise(sc, grid, 0)
	job.setProgress(r)
	job.setDone(verts)
	m.metrics.RecordJob("success", time.Since(start))
}

// Metrics exposes the manager's Prometheus metrics for mounting under
// /metrics.
func (m *JobManager) Metrics() *render.Metrics { return m.metrics }
