package source

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/utils"
)

// Fanout 是一个供给 Node：并发执行多个候选源，合并去重后包装为 Match。
// 支持超时、限流、优先级合并策略。
type Fanout struct {
	Sources       []Source
	Dedup         bool
	Timeout       time.Duration // 每个候选源的超时时间
	MaxConcurrent int           // 最大并发数（0 表示无限制）
	MergeStrategy string        // 合并策略：first / union / priority（优先级按 Sources 顺序）
}

func (n *Fanout) Name() string        { return "source.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindSource }

func (n *Fanout) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	_ []*core.Match,
) ([]*core.Match, error) {
	candidates, err := n.Gather(ctx, mctx)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Match, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, core.NewMatch(c))
	}
	return out, nil
}

// Gather 并发执行全部候选源并按策略合并，供不走 Pipeline 的调用方直接使用。
func (n *Fanout) Gather(ctx context.Context, mctx *core.MatchContext) ([]*core.Candidate, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	var (
		mu    sync.Mutex
		all   []*core.Candidate
		eg, _ = errgroup.WithContext(ctx)
	)

	if n.MaxConcurrent > 0 {
		eg.SetLimit(n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		s := src
		priority := i // 索引越小优先级越高

		eg.Go(func() error {
			gatherCtx := ctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				gatherCtx, cancel = context.WithTimeout(ctx, n.Timeout)
				defer cancel()
			}

			candidates, err := s.Candidates(gatherCtx, mctx)
			if err != nil {
				// 超时或错误时返回空结果，不中断其他候选源
				return nil
			}

			// 记录来源 label，方便 explain / 观测
			for _, c := range candidates {
				if c == nil {
					continue
				}
				c.PutLabel("source", utils.Label{Value: s.Name(), Source: "source"})
				c.PutLabel("source_priority", utils.Label{Value: strconv.Itoa(priority), Source: "source"})
			}

			mu.Lock()
			all = append(all, candidates...)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	switch n.MergeStrategy {
	case "priority":
		return n.mergeByPriority(all), nil
	case "union":
		return all, nil
	default: // "first" 或默认
		return n.mergeFirst(all), nil
	}
}

// mergeFirst 按 ID 去重，保留第一个出现的（默认策略）。
func (n *Fanout) mergeFirst(all []*core.Candidate) []*core.Candidate {
	if !n.Dedup {
		return all
	}
	seen := make(map[string]*core.Candidate, len(all))
	out := make([]*core.Candidate, 0, len(all))
	for _, c := range all {
		if c == nil {
			continue
		}
		if old, ok := seen[c.ID]; ok {
			for k, v := range c.Labels {
				old.PutLabel(k, v)
			}
			continue
		}
		seen[c.ID] = c
		out = append(out, c)
	}
	return out
}

// mergeByPriority 按优先级合并：相同 ID 时保留优先级更高的（索引更小）。
func (n *Fanout) mergeByPriority(all []*core.Candidate) []*core.Candidate {
	if !n.Dedup {
		return all
	}
	seen := make(map[string]*core.Candidate, len(all))
	order := make([]string, 0, len(all))
	for _, c := range all {
		if c == nil {
			continue
		}
		old, exists := seen[c.ID]
		if !exists {
			seen[c.ID] = c
			order = append(order, c.ID)
			continue
		}
		if priorityOf(c) < priorityOf(old) {
			seen[c.ID] = c
		} else {
			for k, v := range c.Labels {
				old.PutLabel(k, v)
			}
		}
	}
	out := make([]*core.Candidate, 0, len(seen))
	for _, id := range order {
		out = append(out, seen[id])
	}
	return out
}

func priorityOf(c *core.Candidate) int {
	lbl, ok := c.Labels["source_priority"]
	if !ok {
		return 999
	}
	p, err := strconv.Atoi(lbl.Value)
	if err != nil {
		return 999
	}
	return p
}
