// internal/model/access.go
package model

import "fmt"

type Action string

const (
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// 拒否理由 (クライアントにそのまま返す固定文言)
const (
	ReasonNoAuthenticatedUser = "no authenticated user"
	ReasonProfileNotFound     = "profile not found"
	ReasonNotAssigned         = "not assigned to this course"
	ReasonAdminOnlyDelete     = "only administrators may delete"
)

func ReasonInsufficientPermissions(action Action) string {
	return fmt.Sprintf("insufficient permissions for %s operation", action)
}

type DecisionKind int

// ゼロ値 (DecisionUndetermined) は許可として扱わない
const (
	DecisionUndetermined DecisionKind = iota
	DecisionPermitted
	DecisionUnauthenticated
	DecisionUnauthorized
)

// Decision は AccessGuard の判定結果です。
// 判定できなかった場合 (リポジトリ障害など) は Decision ではなく error で返されます。
type Decision struct {
	Kind   DecisionKind
	Reason string
}

func Permit() Decision {
	return Decision{Kind: DecisionPermitted}
}

func DenyUnauthenticated() Decision {
	return Decision{Kind: DecisionUnauthenticated, Reason: ReasonNoAuthenticatedUser}
}

func DenyUnauthorized(reason string) Decision {
	return Decision{Kind: DecisionUnauthorized, Reason: reason}
}

func (d Decision) Permitted() bool {
	return d.Kind == DecisionPermitted
}

// Err は拒否判定を AppError に変換します。許可の場合は nil。
func (d Decision) Err() error {
	switch d.Kind {
	case DecisionPermitted:
		return nil
	case DecisionUnauthenticated:
		return NewAppError(CodeUnauthenticated, d.Reason, "", ErrUnauthenticated)
	case DecisionUnauthorized:
		return NewAppError(CodeForbidden, d.Reason, "", ErrForbidden)
	default:
		return NewAppError(CodeInternal, MsgOperationFailed, "", ErrInternalServer)
	}
}
