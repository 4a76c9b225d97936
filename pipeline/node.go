package pipeline

import (
	"context"

	"github.com/rushteam/matchkit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindSource   Kind = "source"   // 供给阶段：拉取候选品牌并包装为 Match
	KindScore    Kind = "score"    // 评分阶段：计算各维度子分与总分
	KindFilter   Kind = "filter"   // 过滤阶段：剔除低分/黑名单候选
	KindSort     Kind = "sort"     // 排序阶段：按总分稳定降序
	KindReRank   Kind = "rerank"   // 重排阶段：截断/多样性等结果调优
	KindAnnotate Kind = "annotate" // 标注阶段：合成建议文本等附加信息
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 matches -> 输出 matches"的形态，方便评分填充、过滤截断、重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		mctx *core.MatchContext,
		matches []*core.Match,
	) ([]*core.Match, error)
}
