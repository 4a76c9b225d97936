package source

import (
	"context"
	"encoding/json"

	"github.com/rushteam/matchkit/core"
)

// Trending 是热度候选源：从有序集合读取 TopN 品牌 ID，
// 再按 ID 从品牌档案 Hash 中取出完整候选。
//   - ZSet 不可用时退化为内存 IDs
//   - 档案缺失的 ID 返回只有 ID 的空候选（由后续评分按缺省分处理）
type Trending struct {
	Store core.KeyValueStore

	// RankKey 是热度有序集合的 key，例如 "brand:trending"。
	RankKey string

	// ProfileKey 是品牌档案 Hash 的 key，可为空。
	ProfileKey string

	// TopN <= 0 时取前 50。
	TopN int

	// IDs 是 fallback 内存列表。
	IDs []string
}

func (s *Trending) Name() string { return "source.trending" }

func (s *Trending) Candidates(ctx context.Context, _ *core.MatchContext) ([]*core.Candidate, error) {
	topN := s.TopN
	if topN <= 0 {
		topN = 50
	}

	var ids []string
	if s.Store != nil && s.RankKey != "" {
		members, err := s.Store.ZRange(ctx, s.RankKey, 0, int64(topN-1))
		if err == nil && len(members) > 0 {
			ids = members
		}
	}
	if len(ids) == 0 {
		ids = s.IDs
	}
	if len(ids) == 0 {
		return nil, nil
	}

	out := make([]*core.Candidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.lookup(ctx, id))
	}
	return out, nil
}

func (s *Trending) lookup(ctx context.Context, id string) *core.Candidate {
	c := core.NewCandidate(id)
	if s.Store == nil || s.ProfileKey == "" {
		return c
	}
	data, err := s.Store.HGet(ctx, s.ProfileKey, id)
	if err != nil || len(data) == 0 {
		return c
	}
	if json.Unmarshal(data, c) != nil {
		return core.NewCandidate(id)
	}
	if c.ID == "" {
		c.ID = id
	}
	return c
}
