// internal/service/instrumented_guard_test.go
package service

import (
	"context"
	"testing"

	"go_course_keep/internal/model"
	svcmocks "go_course_keep/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type recordedDecision struct {
	action  string
	outcome string
}

type decisionLog struct {
	entries []recordedDecision
}

func (l *decisionLog) ObserveDecision(action, outcome string) {
	l.entries = append(l.entries, recordedDecision{action: action, outcome: outcome})
}

func TestInstrumentedGuard(t *testing.T) {
	ctx := context.Background()
	courseID := uuid.New()

	t.Run("正常系: 判定結果をそのまま返し記録する", func(t *testing.T) {
		next := svcmocks.NewMockAccessGuard(t)
		log := &decisionLog{}
		guard := NewInstrumentedGuard(next, log)

		next.On("Authorize", ctx, model.ActionEdit, courseID, "teacher-1").Return(model.Permit(), nil).Once()
		next.On("Authorize", ctx, model.ActionDelete, courseID, "teacher-1").
			Return(model.DenyUnauthorized(model.ReasonAdminOnlyDelete), nil).Once()
		next.On("RequireAdmin", ctx, model.ActionEdit, "").Return(model.DenyUnauthenticated(), nil).Once()
		next.On("Authorize", ctx, model.ActionCreate, courseID, "teacher-1").Return(model.Decision{}, assert.AnError).Once()

		d, err := guard.Authorize(ctx, model.ActionEdit, courseID, "teacher-1")
		assert.NoError(t, err)
		assert.True(t, d.Permitted())

		d, _ = guard.Authorize(ctx, model.ActionDelete, courseID, "teacher-1")
		assert.Equal(t, model.ReasonAdminOnlyDelete, d.Reason)

		d, _ = guard.RequireAdmin(ctx, model.ActionEdit, "")
		assert.Equal(t, model.DecisionUnauthenticated, d.Kind)

		_, err = guard.Authorize(ctx, model.ActionCreate, courseID, "teacher-1")
		assert.ErrorIs(t, err, assert.AnError)

		assert.Equal(t, []recordedDecision{
			{action: "edit", outcome: "permitted"},
			{action: "delete", outcome: "unauthorized"},
			{action: "edit", outcome: "unauthenticated"},
			{action: "create", outcome: "error"},
		}, log.entries)
	})
}
