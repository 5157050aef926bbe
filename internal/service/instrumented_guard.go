// internal/service/instrumented_guard.go
package service

import (
	"context"

	"go_course_keep/internal/model"

	"github.com/google/uuid"
)

// DecisionRecorder は認可判定の結果を受け取ります (observability.Metrics が実装)
type DecisionRecorder interface {
	ObserveDecision(action, outcome string)
}

type instrumentedGuard struct {
	next     AccessGuard
	recorder DecisionRecorder
}

// NewInstrumentedGuard は判定結果を recorder に記録する AccessGuard を返します。
// 判定そのものは next に委譲します
func NewInstrumentedGuard(next AccessGuard, recorder DecisionRecorder) AccessGuard {
	return &instrumentedGuard{next: next, recorder: recorder}
}

func (g *instrumentedGuard) Authorize(ctx context.Context, action model.Action, courseID uuid.UUID, actorID string) (model.Decision, error) {
	decision, err := g.next.Authorize(ctx, action, courseID, actorID)
	g.recorder.ObserveDecision(string(action), decisionOutcome(decision, err))
	return decision, err
}

func (g *instrumentedGuard) RequireAdmin(ctx context.Context, action model.Action, actorID string) (model.Decision, error) {
	decision, err := g.next.RequireAdmin(ctx, action, actorID)
	g.recorder.ObserveDecision(string(action), decisionOutcome(decision, err))
	return decision, err
}

func decisionOutcome(decision model.Decision, err error) string {
	if err != nil {
		return "error"
	}
	switch decision.Kind {
	case model.DecisionPermitted:
		return "permitted"
	case model.DecisionUnauthenticated:
		return "unauthenticated"
	case model.DecisionUnauthorized:
		return "unauthorized"
	default:
		return "undetermined"
	}
}
