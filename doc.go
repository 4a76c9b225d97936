// Package matchkit 是一个多因子评分与排序引擎（Matching Kit），
// 服务于加盟市场的两个场景：入站线索评分、申请人-品牌匹配。
//
// 设计要点：
// - Pipeline-first: 匹配逻辑通过 Node 串联（Source → Score → Filter → Sort → ReRank → Annotate）
// - 解释优先: 每个总分都带因子明细与建议文本，Labels 全链路透传
// - Node 可扩展: 自定义 Node 即可插拔扩展（评分维度、过滤策略均可替换）
package matchkit

import "github.com/rushteam/matchkit/pipeline"

// 轻量 facade：便于用户直接 import "matchkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindSource   = pipeline.KindSource
	KindScore    = pipeline.KindScore
	KindFilter   = pipeline.KindFilter
	KindSort     = pipeline.KindSort
	KindReRank   = pipeline.KindReRank
	KindAnnotate = pipeline.KindAnnotate
)
