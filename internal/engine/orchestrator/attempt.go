package orchestrator

import (
	"context"
	"fmt"

	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/classifier"
)

type state int

const (
	stateAttempt state = iota
	stateClassify
	stateFallback
	statePropagate
)

// stepsFunc runs one full attempt under a runtime version.
type stepsFunc func(ctx context.Context, runtimeVersion string) (string, error)

// attempt retries a sequence of steps once under the fallback runtime when the first
// failure looks runtime related and the project did not pin a runtime itself.
type attempt struct {
	logger ports.Logger
	tracer ports.Tracer

	version       string
	fallback      string
	userSpecified bool
	selectErr     error

	fallbackTried bool
	original      error
}

func (o *Orchestrator) newAttempt() *attempt {
	sel, err := o.selector.Select(o.job.Files)
	return &attempt{
		logger:        o.tools.Logger,
		tracer:        o.tools.Tracer,
		version:       sel.Version,
		fallback:      o.selector.Fallback(),
		userSpecified: sel.UserSpecified,
		selectErr:     err,
	}
}

func (a *attempt) run(ctx context.Context, steps stepsFunc) (string, error) {
	if a.selectErr != nil {
		return "", a.selectErr
	}

	var (
		result string
		err    error
	)
	st := stateAttempt
	for {
		switch st {
		case stateAttempt:
			result, err = a.once(ctx, steps)
			if err == nil {
				return result, nil
			}
			st = stateClassify

		case stateClassify:
			st = statePropagate
			if a.canFallback(ctx, err) {
				st = stateFallback
			}

		case stateFallback:
			a.logger.Warn(fmt.Sprintf("resolution under python %s failed, retrying under python %s", a.version, a.fallback))
			a.original = err
			a.fallbackTried = true
			a.version = a.fallback
			st = stateAttempt

		case statePropagate:
			if a.fallbackTried {
				return "", classifier.ChooseRelevant(a.original, err)
			}
			return "", err
		}
	}
}

func (a *attempt) once(ctx context.Context, steps stepsFunc) (string, error) {
	ctx, span := a.tracer.Start(ctx, "attempt python "+a.version,
		ports.WithAttribute("runtime.version", a.version),
		ports.WithAttribute("runtime.fallback", a.fallbackTried),
	)
	defer span.End()

	result, err := steps(ctx, a.version)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func (a *attempt) canFallback(ctx context.Context, err error) bool {
	switch {
	case ctx.Err() != nil:
		return false
	case a.userSpecified, a.fallbackTried:
		return false
	case a.fallback == "" || a.fallback == a.version:
		return false
	default:
		return classifier.SuggestsBadRuntimeVersion(err.Error())
	}
}
