package services

import (
	"context"
	"errors"
	"sync"

	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/client/repositories/profiles"
	"github.com/t4gged/t4gged/internal/common"
)

var ErrWriterClosed = errors.New("profile writer closed")

type writeRequest struct {
	ctx   context.Context
	apply func(ctx context.Context, repo profiles.Repository) error
	reply chan error
}

// ProfileWriter owns every write to the local profile store. Requests are
// served one at a time by a single goroutine; reads may go to the
// repository directly.
type ProfileWriter struct {
	repo     profiles.Repository
	requests chan writeRequest
	done     chan struct{}
	stopped  chan struct{}
	once     sync.Once
}

func NewProfileWriter(repo profiles.Repository) *ProfileWriter {
	w := &ProfileWriter{
		repo:     repo,
		requests: make(chan writeRequest),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *ProfileWriter) loop() {
	defer close(w.stopped)
	for {
		select {
		case req := <-w.requests:
			if err := req.ctx.Err(); err != nil {
				req.reply <- err
				continue
			}
			req.reply <- req.apply(req.ctx, w.repo)
		case <-w.done:
			return
		}
	}
}

func (w *ProfileWriter) submit(ctx context.Context, apply func(context.Context, profiles.Repository) error) error {
	req := writeRequest{ctx: ctx, apply: apply, reply: make(chan error, 1)}

	select {
	case w.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	case <-w.done:
		return ErrWriterClosed
	}

	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *ProfileWriter) Save(ctx context.Context, p *models.Profile) error {
	return w.submit(ctx, func(ctx context.Context, repo profiles.Repository) error {
		return wrapLocal("save profile", repo.Save(ctx, p))
	})
}

func (w *ProfileWriter) Delete(ctx context.Context, recordName string) error {
	return w.submit(ctx, func(ctx context.Context, repo profiles.Repository) error {
		return wrapLocal("delete profile", repo.Delete(ctx, recordName))
	})
}

// Update loads the row for recordName, or a fresh profile when none exists,
// lets edit change it and saves the result. The whole read-modify-write runs
// on the writer goroutine.
func (w *ProfileWriter) Update(ctx context.Context, recordName string, edit func(p *models.Profile) error) (*models.Profile, error) {
	var out *models.Profile
	err := w.submit(ctx, func(ctx context.Context, repo profiles.Repository) error {
		p, err := repo.Get(ctx, recordName)
		switch {
		case errors.Is(err, common.ErrNotFound):
			p = &models.Profile{RecordName: recordName}
		case err != nil:
			return wrapLocal("load profile", err)
		}

		if err := edit(p); err != nil {
			return err
		}
		p.UpdatedAt = timeNow()

		if err := repo.Save(ctx, p); err != nil {
			return wrapLocal("save profile", err)
		}
		out = p
		return nil
	})
	return out, err
}

// Close stops the writer goroutine and waits for it to exit.
func (w *ProfileWriter) Close() {
	w.once.Do(func() { close(w.done) })
	<-w.stopped
}

func wrapLocal(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrInvalidArgument) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return common.NewStoreError(op, err)
}
