package source

import (
	"context"
	"encoding/json"

	"github.com/rushteam/matchkit/core"
)

// StoreSource 从 Store 读取候选品牌档案。
//   - 如果 Store 实现了 core.KeyValueStore，优先用 HGetAll（每个 field 一个候选的 JSON）
//   - 否则从普通 key 读取 JSON 数组
//
// 解码失败的单条记录直接跳过，不中断整批加载。
type StoreSource struct {
	Store core.Store
	Key   string // 存储 key，例如 "brand:catalog"
}

func (s *StoreSource) Name() string { return "source.store" }

func (s *StoreSource) Candidates(ctx context.Context, _ *core.MatchContext) ([]*core.Candidate, error) {
	if s.Store == nil || s.Key == "" {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInvalidInput, "source: store or key not set")
	}

	if kv, ok := s.Store.(core.KeyValueStore); ok {
		fields, err := kv.HGetAll(ctx, s.Key)
		if err == nil && len(fields) > 0 {
			out := make([]*core.Candidate, 0, len(fields))
			for id, data := range fields {
				c := core.NewCandidate(id)
				if json.Unmarshal(data, c) != nil {
					continue
				}
				if c.ID == "" {
					c.ID = id
				}
				out = append(out, c)
			}
			return out, nil
		}
	}

	data, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, err
	}
	var parsed []*core.Candidate
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, core.NewDomainError(core.ModuleSource, core.ErrorCodeInternalError, "source: decode candidates: "+err.Error())
	}
	out := parsed[:0]
	for _, c := range parsed {
		if c != nil && c.ID != "" {
			out = append(out, c)
		}
	}
	return out, nil
}
