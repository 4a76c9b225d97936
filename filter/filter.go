// Package filter 提供匹配结果的过滤能力：低分截断、品牌黑名单等。
package filter

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Filter 判定哪些 Match 可以继续流向下游。
type Filter interface {
	Name() string

	// Keep 返回 true 表示保留该 Match。
	Keep(ctx context.Context, mctx *core.MatchContext, m *core.Match) bool
}
