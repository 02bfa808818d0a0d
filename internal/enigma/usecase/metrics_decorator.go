package usecase

import (
	"context"
	"time"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	"github.com/allisson/enigma/internal/metrics"
)

// sessionUseCaseWithMetrics decorates SessionUseCase with metrics instrumentation.
type sessionUseCaseWithMetrics struct {
	next    SessionUseCase
	metrics metrics.BusinessMetrics
}

// NewSessionUseCaseWithMetrics wraps a SessionUseCase with metrics recording.
func NewSessionUseCaseWithMetrics(useCase SessionUseCase, m metrics.BusinessMetrics) SessionUseCase {
	return &sessionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Run records metrics for the session and for every key press it encrypts.
func (s *sessionUseCaseWithMetrics) Run(
	ctx context.Context,
	settings enigmaDomain.Settings,
	source KeyEventSource,
	sink OutputSink,
) (*enigmaDomain.SessionSummary, error) {
	start := time.Now()
	summary, err := s.next.Run(ctx, settings, source, &sinkWithMetrics{next: sink, metrics: s.metrics})

	status := metrics.StatusFor(err)
	s.metrics.RecordOperation(ctx, metrics.DomainEnigma, metrics.OperationSessionRun, status)
	s.metrics.RecordDuration(ctx, metrics.DomainEnigma, metrics.OperationSessionRun, time.Since(start), status)

	return summary, err
}

// EncryptText records metrics for text encryption operations.
func (s *sessionUseCaseWithMetrics) EncryptText(
	ctx context.Context,
	settings enigmaDomain.Settings,
	text string,
	opts enigmaDomain.TextOptions,
) (string, error) {
	start := time.Now()
	out, err := s.next.EncryptText(ctx, settings, text, opts)

	status := metrics.StatusFor(err)
	s.metrics.RecordOperation(ctx, metrics.DomainEnigma, metrics.OperationEncryptText, status)
	s.metrics.RecordDuration(ctx, metrics.DomainEnigma, metrics.OperationEncryptText, time.Since(start), status)

	return out, err
}

// sinkWithMetrics counts key presses on their way to the real sink.
type sinkWithMetrics struct {
	next    OutputSink
	metrics metrics.BusinessMetrics
}

// Display records a keystroke and forwards it.
func (s *sinkWithMetrics) Display(ctx context.Context, keystroke enigmaDomain.Keystroke) {
	s.metrics.RecordOperation(ctx, metrics.DomainEnigma, metrics.OperationKeystroke, metrics.StatusSuccess)
	s.next.Display(ctx, keystroke)
}
