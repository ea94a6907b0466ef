package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"modeldeck/backend/internal/llm"
	"modeldeck/backend/internal/model"
	"modeldeck/backend/internal/progress"
	"modeldeck/backend/internal/repository"
	"modeldeck/backend/internal/runtime"
)

// PullService orchestrates tracked model downloads. Start detaches one
// background task per model which owns all writes to that model's progress
// record; polling goes straight to the store. A retained cancel handle per
// key lets Cancel interrupt the upstream read instead of only flagging the
// record.
type PullService struct {
	store    progress.Store
	llm      llm.Provider
	launcher runtime.Launcher
	history  repository.HistoryRepository
	grace    time.Duration

	mu       sync.Mutex
	attempts map[string]*attempt
	nextGen  uint64
}

// attempt is the supervision state of one live background pull task.
type attempt struct {
	gen     uint64
	cancel  context.CancelFunc
	started time.Time
}

func NewPullService(store progress.Store, provider llm.Provider, launcher runtime.Launcher, history repository.HistoryRepository, grace time.Duration) *PullService {
	return &PullService{
		store:    store,
		llm:      provider,
		launcher: launcher,
		history:  history,
		grace:    grace,
		attempts: make(map[string]*attempt),
	}
}

// Start begins a tracked download and returns the initial progress record.
// An empty name yields a terminal Error record without touching the store
// or the upstream. Re-issuing Start for a model that is already being
// pulled cancels the previous task and restarts tracking from scratch.
func (s *PullService) Start(ctx context.Context, name string) model.PullProgress {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.PullProgress{
			Model:  name,
			Status: model.StatusError,
			Done:   true,
			Error:  "model name cannot be empty",
		}
	}

	if !s.llm.Status(ctx).Running {
		slog.Info("Ollama is not running, starting it before the pull", "model", name)
		if err := s.launcher.Start(); err != nil {
			slog.Warn("Could not start ollama serve", "error", err)
		}
		time.Sleep(s.grace)
	}

	now := time.Now()
	rec := model.PullProgress{
		Model:      name,
		Status:     model.StatusStarting,
		LastUpdate: now.Unix(),
	}

	s.mu.Lock()
	if prev, ok := s.attempts[name]; ok {
		// Restart: the old task loses write ownership of the key.
		prev.cancel()
	}
	s.nextGen++
	pctx, cancel := context.WithCancel(context.Background())
	att := &attempt{gen: s.nextGen, cancel: cancel, started: now}
	s.attempts[name] = att
	s.store.Set(name, rec)
	s.mu.Unlock()

	go s.run(pctx, name, att.gen)

	return rec
}

// Check returns the current progress for a model. When no record exists it
// reconciles against the installed model list: a match means the model was
// pulled before tracking began, otherwise the download has not surfaced in
// the store yet. Check never mutates the store.
func (s *PullService) Check(ctx context.Context, name string) model.PullProgress {
	name = strings.TrimSpace(name)
	if rec, ok := s.store.Get(name); ok {
		return rec
	}

	status := s.llm.Status(ctx)
	for _, m := range status.Models {
		if strings.Contains(m, name) {
			return model.PullProgress{
				Model:   name,
				Status:  model.StatusComplete,
				Percent: 100,
				Done:    true,
			}
		}
	}
	return model.PullProgress{
		Model:  name,
		Status: model.StatusWaiting,
	}
}

// Cancel marks the download as cancelled and interrupts its background
// task. It acknowledges the request even when no matching record exists;
// cancellation of an unknown model is a no-op, not an error.
func (s *PullService) Cancel(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)

	cancelled := false
	s.store.Mutate(name, func(p *model.PullProgress) {
		if p.Done {
			return
		}
		p.Done = true
		p.Status = model.StatusCancelled
		p.Error = "download cancelled by user"
		p.Speed = ""
		p.LastUpdate = time.Now().Unix()
		cancelled = true
	})

	s.mu.Lock()
	att, ok := s.attempts[name]
	if ok {
		att.cancel()
		delete(s.attempts, name)
	}
	s.mu.Unlock()

	if cancelled {
		s.recordHistory(name, att)
	}
	return true
}

// History lists recent terminal download attempts.
func (s *PullService) History(ctx context.Context, limit int) ([]model.DownloadRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.List(ctx, limit)
}

// run consumes the upstream pull stream and applies every chunk to the
// progress record until a terminal chunk arrives or the stream breaks.
func (s *PullService) run(ctx context.Context, name string, gen uint64) {
	events := make(chan llm.PullEvent)
	errc := make(chan error, 1)
	go func() {
		errc <- s.llm.PullStream(ctx, name, events)
	}()

	var lastBytes int64
	var lastTime time.Time
	for ev := range events {
		s.applyEvent(ctx, name, gen, ev, &lastBytes, &lastTime)
	}

	if err := <-errc; err != nil && ctx.Err() == nil {
		slog.Error("Pull stream failed", "model", name, "error", err)
		terminal := false
		s.mutateIfCurrent(name, gen, func(p *model.PullProgress) {
			if p.Done {
				return
			}
			p.Done = true
			p.Status = model.StatusError
			p.Error = err.Error()
			p.Speed = ""
			p.LastUpdate = time.Now().Unix()
			terminal = true
		})
		if terminal {
			s.finish(name, gen)
		}
	}

	s.release(name, gen)
}

// applyEvent translates one upstream chunk into a record mutation. Percent
// is clamped to [0,100] and never decreases while the download is live;
// the transfer rate is derived from completed-byte deltas over wall time.
func (s *PullService) applyEvent(ctx context.Context, name string, gen uint64, ev llm.PullEvent, lastBytes *int64, lastTime *time.Time) {
	now := time.Now()

	percent := 0.0
	if ev.Total > 0 {
		percent = float64(ev.Completed) / float64(ev.Total) * 100
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	speed := ""
	if !lastTime.IsZero() && ev.Completed > *lastBytes {
		if dt := now.Sub(*lastTime).Seconds(); dt > 0 {
			rate := int64(float64(ev.Completed-*lastBytes) / dt)
			speed = formatBytes(rate) + "/s"
		}
	} else if ev.Total > 0 && ev.Completed > 0 && ev.Completed < ev.Total {
		speed = formatBytes(ev.Completed) + " / " + formatBytes(ev.Total)
	}
	if ev.Completed > 0 {
		*lastBytes = ev.Completed
		*lastTime = now
	}

	terminal := false
	s.mutateIfCurrent(name, gen, func(p *model.PullProgress) {
		if p.Done {
			return
		}
		p.LastUpdate = now.Unix()
		switch {
		case ev.Error != "":
			p.Done = true
			p.Status = model.StatusError
			p.Error = ev.Error
			p.Speed = ""
			terminal = true
		case ev.Status == "success":
			p.Done = true
			p.Status = model.StatusComplete
			p.Percent = 100
			p.Error = ""
			p.Speed = ""
			terminal = true
		default:
			if ev.Status != "" {
				p.Status = ev.Status
			}
			if percent > p.Percent {
				p.Percent = percent
			}
			if ev.Completed > 0 {
				p.BytesDownloaded = ev.Completed
			}
			p.Speed = speed
		}
	})

	if terminal {
		s.finish(name, gen)
	}
}

// mutateIfCurrent applies fn only while gen still owns the key, so a task
// superseded by a restart can never touch its successor's record.
func (s *PullService) mutateIfCurrent(name string, gen uint64, fn func(*model.PullProgress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	att, ok := s.attempts[name]
	if !ok || att.gen != gen {
		return
	}
	s.store.Mutate(name, fn)
}

// finish records the terminal outcome in the download history and releases
// the supervision state for the key.
func (s *PullService) finish(name string, gen uint64) {
	s.mu.Lock()
	att, ok := s.attempts[name]
	if ok && att.gen == gen {
		att.cancel()
		delete(s.attempts, name)
	} else {
		att = nil
	}
	s.mu.Unlock()

	if att != nil {
		s.recordHistory(name, att)
	}
}

// release drops the supervision state without recording history; used when
// the task exits for a reason already accounted for (cancel or restart).
func (s *PullService) release(name string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if att, ok := s.attempts[name]; ok && att.gen == gen {
		att.cancel()
		delete(s.attempts, name)
	}
}

func (s *PullService) recordHistory(name string, att *attempt) {
	if s.history == nil {
		return
	}
	snapshot, ok := s.store.Get(name)
	if !ok {
		return
	}

	now := time.Now()
	started := now
	if att != nil && !att.started.IsZero() {
		started = att.started
	}
	rec := &model.DownloadRecord{
		ID:              uuid.NewString(),
		Model:           snapshot.Model,
		Status:          snapshot.Status,
		Error:           snapshot.Error,
		BytesDownloaded: snapshot.BytesDownloaded,
		StartedAt:       started,
		FinishedAt:      now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.history.Add(ctx, rec); err != nil {
		// History is an audit trail; losing a row must not affect tracking.
		slog.Warn("Could not record download history", "model", name, "error", err)
	}
}

func formatBytes(n int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.1f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
