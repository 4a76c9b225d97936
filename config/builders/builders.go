// Package builders 在 init 中注册全部内置 Node 的配置构建器。
// 入口处 import _ "github.com/rushteam/matchkit/config/builders" 即可启用配置驱动。
package builders

import (
	"fmt"
	"time"

	"github.com/rushteam/matchkit/config"
	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/filter"
	"github.com/rushteam/matchkit/pipeline"
	"github.com/rushteam/matchkit/pkg/conv"
	"github.com/rushteam/matchkit/rank"
	"github.com/rushteam/matchkit/recommend"
	"github.com/rushteam/matchkit/rerank"
	"github.com/rushteam/matchkit/source"
)

func init() {
	config.Register("source.fanout", BuildFanoutNode)
	config.Register("rank.score", BuildScoreNode)
	config.Register("rank.sort", BuildSortNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("recommend.annotate", BuildAnnotateNode)
}

func BuildFanoutNode(cfg map[string]interface{}) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]source.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]interface{})
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "trending":
			ids := conv.SliceAnyToString(sourceMap["ids"])
			if ids == nil {
				ids = []string{}
			}
			sources = append(sources, &source.Trending{
				IDs:  ids,
				TopN: int(conv.ConfigGetInt64(sourceMap, "top_n", 0)),
			})
		case "static":
			sources = append(sources, &source.Static{Items: staticCandidates(sourceMap["candidates"])})
		case "store":
			// StoreSource 需要 core.Store 实例，暂未从配置构建
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &source.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet(cfg, "dedup", true),
		MergeStrategy: conv.ConfigGet(cfg, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

// staticCandidates 解析内联候选列表：[{id, name, investment_band, industries, ...}]。
func staticCandidates(v interface{}) []*core.Candidate {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]*core.Candidate, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		id := conv.ConfigGet(m, "id", "")
		if id == "" {
			continue
		}
		c := core.NewCandidate(id)
		c.Name = conv.ConfigGet(m, "name", "")
		c.InvestmentBand = conv.ConfigGet(m, "investment_band", "")
		c.RequiredExperience = conv.ConfigGet(m, "required_experience", "")
		c.Industries = conv.SliceAnyToString(m["industries"])
		if locs, ok := m["locations"].([]interface{}); ok {
			for _, lv := range locs {
				lm, ok := lv.(map[string]interface{})
				if !ok {
					continue
				}
				c.Locations = append(c.Locations, core.Location{
					City:    conv.ConfigGet(lm, "city", ""),
					State:   conv.ConfigGet(lm, "state", ""),
					Country: conv.ConfigGet(lm, "country", ""),
				})
			}
		}
		out = append(out, c)
	}
	return out
}

func BuildScoreNode(cfg map[string]interface{}) (pipeline.Node, error) {
	node := &rank.ScoreNode{}

	switch profile := conv.ConfigGet(cfg, "profile", "brand_match"); profile {
	case "brand_match", "":
		node.Weights = rank.BrandMatchWeights()
	case "lead_scoring":
		node.Weights = rank.LeadScoringWeights()
	default:
		return nil, fmt.Errorf("unknown weights profile: %s", profile)
	}

	// 自定义权重覆盖内置场景
	if weightsMap, ok := cfg["weights"].(map[string]interface{}); ok {
		node.Weights = rank.Weights{
			Name:   conv.ConfigGet(cfg, "weights_name", "custom"),
			Values: conv.MapToFloat64(weightsMap),
		}
	}
	if err := node.Weights.Validate(); err != nil {
		return nil, err
	}

	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		node.MaxConcurrent = int(n)
	}
	return node, nil
}

func BuildSortNode(_ map[string]interface{}) (pipeline.Node, error) {
	return &rank.SortNode{}, nil
}

func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("filters not found or invalid")
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "min_score":
			filters = append(filters, &filter.MinScore{
				Threshold: int(conv.ConfigGetInt64(filterMap, "threshold", 0)),
			})
		case "blacklist":
			ids := conv.SliceAnyToString(filterMap["brand_ids"])
			if ids == nil {
				ids = []string{}
			}
			filters = append(filters, filter.NewBlacklist(ids))
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.Node{Filters: filters}, nil
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopN{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildAnnotateNode(cfg map[string]interface{}) (pipeline.Node, error) {
	node := &recommend.AnnotateNode{}
	rulesConfig, ok := cfg["rules"].([]interface{})
	if !ok {
		return node, nil
	}
	for _, rc := range rulesConfig {
		ruleMap, ok := rc.(map[string]interface{})
		if !ok {
			continue
		}
		expr := conv.ConfigGet(ruleMap, "expr", "")
		message := conv.ConfigGet(ruleMap, "message", "")
		if expr == "" || message == "" {
			return nil, fmt.Errorf("rule requires expr and message")
		}
		node.Rules = append(node.Rules, recommend.Rule{
			Name:    conv.ConfigGet(ruleMap, "name", ""),
			Expr:    expr,
			Type:    core.RecommendationType(conv.ConfigGet(ruleMap, "type", "info")),
			Message: message,
		})
	}
	return node, nil
}
