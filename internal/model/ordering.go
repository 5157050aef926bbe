// internal/model/ordering.go
package model

import "github.com/google/uuid"

// SiblingPosition は兄弟コレクション (同じ親を持つモジュール/レッスン) 内の位置です
type SiblingPosition struct {
	ID         uuid.UUID
	OrderIndex int
}

// PositionUpdate は並び替えで発生する1件分の更新です。
// OldIndex は compare-and-set 更新の条件に使います。
type PositionUpdate struct {
	ID       uuid.UUID
	OldIndex int
	NewIndex int
}

// ParkedOrderIndex は並び替え中に移動対象を退避させる位置 (1..N の外側)
const ParkedOrderIndex = 0
