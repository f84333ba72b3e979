package server

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrJobNotFound is returned when a job ID does not match any known job.
var ErrJobNotFound = errors.New("server: job not found")

// ErrUnknownSceneName is returned when a job references a scene name the
// demo registry does not recognise.
var ErrUnknownSceneName = errors.New("server: unknown scene name")

// JobKind distinguishes render jobs from mesh jobs.
type JobKind string

const (
	// JobKindRender produces a rasterised PNG via sphere tracing.
	JobKindRender JobKind = "render"
	// JobKindMesh produces a triangle mesh via marching cubes.
	JobKindMesh JobKind = "mesh"
)

// JobStatus is a job's lifecycle state.
type JobStatus string

const (
	JobStatusQueued  JobStatus = "queued"
	JobStatusRunning JobStatus = "running"
	JobStatusDone    JobStatus = "done"
	JobStatusFailed  JobStatus = "failed"
)

// Job tracks one render or mesh request from submission through
// completion. It is safe for concurrent access through its methods.
type Job struct {
	ID        string    `json:"id"`
	Kind      JobKind   `json:"kind"`
	SceneName string    `json:"scene_name"`
	Status    JobStatus `json:"status"`
	Progress  int       `json:"progress"`
	Total     int       `json:"total"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Result holds the job's output once Status is JobStatusDone: an
	// *render.Image for JobKindRender, a []vecmath.Vec3 vertex buffer
	// for JobKindMesh. Typed as any because its concrete type depends on
	// Kind.
	Result any `json:"-"`

	mu          sync.Mutex
	subscribers map[*wsSubscriber]struct{}
}

func newJob(id string, kind JobKind, sceneName string) *Job {
	now := time.Now()
	return &Job{
		ID:          id,
		Kind:        kind,
		SceneName:   sceneName,
		Status:      JobStatusQueued,
		CreatedAt:   now,
		UpdatedAt:   now,
		subscribers: make(map[*wsSubscriber]struct{}),
	}
}

// snapshot returns a copy of the job's public fields for JSON responses.
// Result is deliberately excluded: it is a render image or mesh vertex
// buffer, not JSON-shaped status, and is served separately by the
// result route.
func (j *Job) snapshot() Job {
	j.mu.Lock()
	defer j.mu.Unlock()
	return Job{
		ID: j.ID, Kind: j.Kind, SceneName: j.SceneName, Status: j.Status,
		Progress: j.Progress, Total: j.Total, Error: j.Error,
		CreatedAt: j.CreatedAt, UpdatedAt: j.UpdatedAt,
	}
}

// result returns the job's output, synchronised against concurrent
// setDone calls.
func (j *Job) result() any {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Result
}

func (j *Job) setRunning(total int) {
	j.mu.Lock()
	j.Status = JobStatusRunning
	j.Total = total
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	j.broadcast()
}

func (j *Job) setProgress(done int) {
	j.mu.Lock()
	j.Progress = done
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	j.broadcast()
}

func (j *Job) setDone(result any) {
	j.mu.Lock()
	j.Status = JobStatusDone
	j.Result = result
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	j.broadcast()
}

func (j *Job) setFailed(err error) {
	j.mu.Lock()
	j.Status = JobStatusFailed
	j.Error = err.Error()
	j.UpdatedAt = time.Now()
	j.mu.Unlock()
	j.broadcast()
}

// wsSubscriber wraps a WebSocket connection with a mutex so concurrent
// writers (multiple job-state broadcasts in flight at once) never race
// on a single connection.
type wsSubscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *wsSubscriber) send(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(v)
}

func (j *Job) subscribe(s *wsSubscriber) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.subscribers[s] = struct{}{}
}

func (j *Job) unsubscribe(s *wsSubscriber) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.subscribers, s)
}

func (j *Job) broadcast() {
	snap := j.snapshot()
	j.mu.Lock()
	subs := make([]*wsSubscriber, 0, len(j.subscribers))
	for s := range j.subscribers {
		subs = append(subs, s)
	}
	j.mu.Unlock()

	for _, s := range subs {
		_ = s.send(snap)
	}
}
