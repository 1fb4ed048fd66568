package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrideck/internal/config"
	"agrideck/internal/deck"
	"agrideck/internal/fileutil"
	"agrideck/internal/history"
	"agrideck/internal/logging"
	"agrideck/internal/pptx"
)

// Recorder persists build outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}

// Options configures a Builder.
type Options struct {
	// OutputPath is the deck file to write.
	OutputPath string
	// LockDir holds the inter-process lock files. Defaults to os.TempDir.
	LockDir string
	Render  pptx.Options
	Logger  *slog.Logger
	// Recorder, when set, receives one entry per build.
	Recorder Recorder
	// Now and NewRunID default to time.Now and uuid.NewString.
	Now      func() time.Time
	NewRunID func() string
}

// OptionsFromConfig derives builder options from cfg.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) (Options, error) {
	path, err := cfg.OutputPath()
	if err != nil {
		return Options{}, err
	}
	return Options{
		OutputPath: path,
		LockDir:    cfg.Lock.Dir,
		Render:     pptx.OptionsFromConfig(cfg),
		Logger:     logger,
	}, nil
}

// Result describes a saved deck.
type Result struct {
	RunID    string
	Path     string
	Slides   int
	Bytes    int64
	Duration time.Duration
}

// Builder renders decks and writes them to a fixed output path.
type Builder struct {
	opts     Options
	renderer *pptx.Renderer
	logger   *slog.Logger
}

// New creates a Builder.
func New(opts Options) *Builder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}
	if strings.TrimSpace(opts.LockDir) == "" {
		opts.LockDir = os.TempDir()
	}
	logger := logging.NewComponentLogger(opts.Logger, "builder")
	return &Builder{
		opts:     opts,
		renderer: pptx.NewRenderer(opts.Render, opts.Logger),
		logger:   logger,
	}
}

// OutputPath returns the file the builder writes.
func (b *Builder) OutputPath() string {
	return b.opts.OutputPath
}

// BuildAndSave renders the AgriSense deck and writes it to the output path.
func (b *Builder) BuildAndSave(ctx context.Context) (Result, error) {
	return b.Save(ctx, deck.AgriSense())
}

// Save renders d and writes it to the output path. d is sealed on success.
func (b *Builder) Save(ctx context.Context, d *deck.Deck) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	started := b.opts.Now()
	res := Result{RunID: b.opts.NewRunID(), Path: b.opts.OutputPath, Slides: d.Len()}
	ctx = logging.WithRunID(ctx, res.RunID)
	logger := logging.WithContext(ctx, b.logger).With(logging.String(logging.FieldOutput, res.Path))

	err := b.save(ctx, d, &res, logger)
	res.Duration = b.opts.Now().Sub(started)
	b.record(ctx, res, started, err, logger)

	switch {
	case err == nil:
		logger.Info("deck saved",
			logging.Int("slides", res.Slides),
			logging.Int64("bytes", res.Bytes),
			logging.Duration("elapsed", res.Duration),
		)
	case errors.Is(err, ErrOutputLocked):
		logger.Warn("output file in use", logging.String(logging.FieldEventType, "output_locked"), logging.Error(err))
	case errors.Is(err, ErrMissingDependency):
		logger.Error("document engine unavailable", logging.String(logging.FieldEventType, "missing_dependency"), logging.Error(err))
	default:
		logger.Error("deck build failed", logging.Error(err))
	}
	return res, err
}

func (b *Builder) save(ctx context.Context, d *deck.Deck, res *Result, logger *slog.Logger) error {
	// Without a writer there is nothing to build; fail before touching the lock.
	if err := pptx.CheckWriter(); err != nil {
		return classifyRenderError(err)
	}

	lock := newOutputLock(b.opts.LockDir, res.Path)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire output lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return fmt.Errorf("%w: %s: another agrideck run holds %s", ErrOutputLocked, res.Path, lock.Path())
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("release output lock", logging.Error(err))
		}
	}()
	logger.Debug("output lock acquired", logging.String("lock", lock.Path()))

	data, err := b.renderer.RenderBytes(d)
	if err != nil {
		return classifyRenderError(err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := fileutil.WriteFileVerified(res.Path, data, 0o644); err != nil {
		return classifySaveError(res.Path, err)
	}
	res.Bytes = int64(len(data))
	return nil
}

func (b *Builder) record(ctx context.Context, res Result, started time.Time, buildErr error, logger *slog.Logger) {
	if b.opts.Recorder == nil {
		return
	}
	entry := history.Entry{
		RunID:      res.RunID,
		OutputPath: res.Path,
		Status:     statusFor(buildErr),
		Slides:     res.Slides,
		SizeBytes:  res.Bytes,
		StartedAt:  started,
		FinishedAt: started.Add(res.Duration),
	}
	if buildErr != nil {
		entry.Message = buildErr.Error()
	}
	// History is advisory; a failed insert never fails the build.
	if err := b.opts.Recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		logger.Warn("record build history", logging.Error(err))
	}
}
