// internal/service/order_reindexer.go
package service

import (
	"fmt"
	"sort"

	"go_course_keep/internal/model"

	"github.com/google/uuid"
)

// 並び順の計算はすべて I/O を持たない純粋関数。
// 返すプランは適用順に並んでいる (移動対象を ParkedOrderIndex に退避した状態で
// 先頭から順に適用すれば、一意制約があっても衝突しない)。

func orderRangeError(max int) error {
	return model.NewAppError(
		model.CodeValidation,
		fmt.Sprintf("order must be between 1 and %d", max),
		"order_index",
		model.ErrInvalidInput,
	)
}

// PlanReorder は movingID を requestedIndex へ移動するときに、
// 他の兄弟に必要な位置更新を返します。移動対象自身はプランに含まれません。
func PlanReorder(siblings []model.SiblingPosition, movingID uuid.UUID, requestedIndex int) ([]model.PositionUpdate, error) {
	n := len(siblings)
	if requestedIndex < 1 || requestedIndex > n {
		return nil, orderRangeError(n)
	}

	oldIndex := -1
	for _, s := range siblings {
		if s.ID == movingID {
			oldIndex = s.OrderIndex
			break
		}
	}
	if oldIndex < 0 {
		return nil, model.NewAppError(model.CodeNotFound, "item not found in sibling collection", "", model.ErrNotFound)
	}
	if requestedIndex == oldIndex {
		return []model.PositionUpdate{}, nil
	}

	plan := make([]model.PositionUpdate, 0, abs(oldIndex-requestedIndex))
	for _, s := range siblings {
		if s.ID == movingID {
			continue
		}
		switch {
		case requestedIndex < oldIndex && s.OrderIndex >= requestedIndex && s.OrderIndex < oldIndex:
			plan = append(plan, model.PositionUpdate{ID: s.ID, OldIndex: s.OrderIndex, NewIndex: s.OrderIndex + 1})
		case requestedIndex > oldIndex && s.OrderIndex > oldIndex && s.OrderIndex <= requestedIndex:
			plan = append(plan, model.PositionUpdate{ID: s.ID, OldIndex: s.OrderIndex, NewIndex: s.OrderIndex - 1})
		}
	}

	if requestedIndex < oldIndex {
		// 後ろへずらすので大きい方から
		sortDescending(plan)
	} else {
		sortAscending(plan)
	}
	return plan, nil
}

// PlanInsert は requestedIndex に新規要素を挿入するための位置更新を返します。
// 範囲は 1..N+1 (N+1 は末尾への追加)
func PlanInsert(siblings []model.SiblingPosition, requestedIndex int) ([]model.PositionUpdate, error) {
	n := len(siblings)
	if requestedIndex < 1 || requestedIndex > n+1 {
		return nil, orderRangeError(n + 1)
	}

	plan := make([]model.PositionUpdate, 0, n+1-requestedIndex)
	for _, s := range siblings {
		if s.OrderIndex >= requestedIndex {
			plan = append(plan, model.PositionUpdate{ID: s.ID, OldIndex: s.OrderIndex, NewIndex: s.OrderIndex + 1})
		}
	}
	sortDescending(plan)
	return plan, nil
}

// PlanCompaction は削除後の残りの兄弟を相対順序を保ったまま 1..M に詰め直します。
func PlanCompaction(siblings []model.SiblingPosition) []model.PositionUpdate {
	ordered := make([]model.SiblingPosition, len(siblings))
	copy(ordered, siblings)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderIndex < ordered[j].OrderIndex
	})

	plan := []model.PositionUpdate{}
	for i, s := range ordered {
		want := i + 1
		if s.OrderIndex != want {
			plan = append(plan, model.PositionUpdate{ID: s.ID, OldIndex: s.OrderIndex, NewIndex: want})
		}
	}
	return plan
}

// CheckDense はスナップショットが 1..N の順列になっているか検証します。
// 崩れている場合は ErrConflict (他の更新と競合した、もしくはデータ不整合)
func CheckDense(siblings []model.SiblingPosition) error {
	n := len(siblings)
	seen := make([]bool, n+1)
	for _, s := range siblings {
		if s.OrderIndex < 1 || s.OrderIndex > n || seen[s.OrderIndex] {
			return model.NewAppError(model.CodeConflict, "sibling order is inconsistent, please retry", "order_index", model.ErrConflict)
		}
		seen[s.OrderIndex] = true
	}
	return nil
}

func sortAscending(plan []model.PositionUpdate) {
	sort.Slice(plan, func(i, j int) bool { return plan[i].OldIndex < plan[j].OldIndex })
}

func sortDescending(plan []model.PositionUpdate) {
	sort.Slice(plan, func(i, j int) bool { return plan[i].OldIndex > plan[j].OldIndex })
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
