package sortition

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logged wraps an Rng and logs every draw at debug level with a generated
// draw id, the requested range, and the resulting indices.
//
// The intention is never logged: it has no path out of the wrapped call, only
// its derived indices do.
type Logged struct {
	rng    *Rng
	logger *zap.Logger
}

// NewLogged creates a Logged draw wrapper.
//
// Precondition: rng and logger must be non-nil.
func NewLogged(rng *Rng, logger *zap.Logger) *Logged {
	return &Logged{rng: rng, logger: logger}
}

// Draw draws one index and logs the outcome.
func (l *Logged) Draw(intention string, max int) (DrawResult, error) {
	id := uuid.NewString()
	start := time.Now()
	res, err := l.rng.Draw(intention, max)
	if err != nil {
		l.logger.Debug("draw failed",
			zap.String("draw_id", id),
			zap.Int("max", max),
			zap.Error(err),
		)
		return DrawResult{}, err
	}
	l.logger.Debug("draw",
		zap.String("draw_id", id),
		zap.Int("max", max),
		zap.Int("index", res.Index),
		zap.String("timestamp", res.Timestamp),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// DrawMultiple draws count indices (duplicates allowed) and logs the outcome.
func (l *Logged) DrawMultiple(intention string, max, count int) (MultiDrawResult, error) {
	return l.logMulti("draw multiple", max, count, func() (MultiDrawResult, error) {
		return l.rng.DrawMultiple(intention, max, count)
	})
}

// DrawUnique draws count distinct indices and logs the outcome.
func (l *Logged) DrawUnique(intention string, max, count int) (MultiDrawResult, error) {
	return l.logMulti("draw unique", max, count, func() (MultiDrawResult, error) {
		return l.rng.DrawUnique(intention, max, count)
	})
}

func (l *Logged) logMulti(msg string, max, count int, draw func() (MultiDrawResult, error)) (MultiDrawResult, error) {
	id := uuid.NewString()
	start := time.Now()
	res, err := draw()
	if err != nil {
		l.logger.Debug(msg+" failed",
			zap.String("draw_id", id),
			zap.Int("max", max),
			zap.Int("count", count),
			zap.Error(err),
		)
		return MultiDrawResult{}, err
	}
	l.logger.Debug(msg,
		zap.String("draw_id", id),
		zap.Int("max", max),
		zap.Int("count", count),
		zap.Ints("indices", res.Indices),
		zap.String("timestamp", res.Timestamp),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}
