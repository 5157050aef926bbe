// internal/service/ordering.go
package service

import (
	"context"
	"errors"

	"go_course_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MsgOrderChanged は書き込み中に兄弟の並びが変わっていた場合のメッセージ
const MsgOrderChanged = "sibling order changed, please retry"

// positionWriter は ModuleRepository / LessonRepository の位置更新部分
type positionWriter interface {
	UpdateOrderIndex(ctx context.Context, tx *gorm.DB, id uuid.UUID, from, to int) error
}

// applyPlan はプランを先頭から順に書き込みます。1 件でも失敗したら中断
func applyPlan(ctx context.Context, tx *gorm.DB, w positionWriter, plan []model.PositionUpdate) error {
	for _, u := range plan {
		if err := w.UpdateOrderIndex(ctx, tx, u.ID, u.OldIndex, u.NewIndex); err != nil {
			return err
		}
	}
	return nil
}

// moveWithin はスナップショット上の movingID を requestedIndex へ移動します。
// 移動対象を退避 → 兄弟をシフト → 移動対象を確定、の順に書き込む
func moveWithin(ctx context.Context, tx *gorm.DB, w positionWriter, siblings []model.SiblingPosition, movingID uuid.UUID, requestedIndex int) error {
	if err := CheckDense(siblings); err != nil {
		return err
	}
	plan, err := PlanReorder(siblings, movingID, requestedIndex)
	if err != nil {
		return err
	}

	var current int
	for _, s := range siblings {
		if s.ID == movingID {
			current = s.OrderIndex
			break
		}
	}
	if current == requestedIndex {
		return nil
	}

	if err := w.UpdateOrderIndex(ctx, tx, movingID, current, model.ParkedOrderIndex); err != nil {
		return err
	}
	if err := applyPlan(ctx, tx, w, plan); err != nil {
		return err
	}
	return w.UpdateOrderIndex(ctx, tx, movingID, model.ParkedOrderIndex, requestedIndex)
}

// insertSlot は新しい要素のための位置を空け、確定した位置を返します。
// requested が nil の場合は末尾 (N+1)
func insertSlot(ctx context.Context, tx *gorm.DB, w positionWriter, siblings []model.SiblingPosition, requested *int) (int, error) {
	if err := CheckDense(siblings); err != nil {
		return 0, err
	}
	index := len(siblings) + 1
	if requested != nil {
		index = *requested
	}
	plan, err := PlanInsert(siblings, index)
	if err != nil {
		return 0, err
	}
	if err := applyPlan(ctx, tx, w, plan); err != nil {
		return 0, err
	}
	return index, nil
}

// compact は削除後の残りを 1..N に詰め直します
func compact(ctx context.Context, tx *gorm.DB, w positionWriter, survivors []model.SiblingPosition) error {
	return applyPlan(ctx, tx, w, PlanCompaction(survivors))
}

// translateTxError はトランザクション内のエラーを呼び出し元に返す形へ変換します
func translateTxError(err error, notFoundMessage string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, model.ErrConflict):
		return model.NewAppError(model.CodeConflict, MsgOrderChanged, "", model.ErrConflict)
	case errors.Is(err, model.ErrNotFound):
		return model.NewAppError(model.CodeNotFound, notFoundMessage, "", model.ErrNotFound)
	default:
		return model.NewCollaboratorError(err)
	}
}

// lookupError は事前の読み取り (エンティティ・親の取得) のエラーを変換します
func lookupError(err error, notFoundMessage string) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError(model.CodeNotFound, notFoundMessage, "", model.ErrNotFound)
	}
	return model.NewCollaboratorError(err)
}

// authorize は AccessGuard の判定を error に畳み込みます
func authorize(decision model.Decision, err error) error {
	if err != nil {
		return model.NewCollaboratorError(err)
	}
	return decision.Err()
}
