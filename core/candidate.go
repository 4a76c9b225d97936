package core

import "github.com/rushteam/matchkit/pkg/utils"

// Location 是候选方的一个经营/开放加盟的地点。
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Candidate 是匹配链路中的统一候选结构：品牌（或待分流的线索记录）。
// 引擎对 Candidate 只读：评分/排序过程不得修改候选本身，
// 分数与解释写入 Match，Labels 仅用于来源追踪等附加信息。
type Candidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// InvestmentBand 是候选方要求的投资区间，取值来自 refdata.InvestmentBands。
	InvestmentBand string `json:"investment_band,omitempty"`

	// Industries 是候选品牌所属行业列表。
	Industries []string `json:"industries,omitempty"`

	// Locations 是候选方可落地的地点列表。
	Locations []Location `json:"locations,omitempty"`

	// RequiredExperience 是候选方对加盟者经验的要求，
	// 取值来自 refdata.ExperienceRequirements（None / Preferred / Required）。
	RequiredExperience string `json:"required_experience,omitempty"`

	Meta   map[string]any         `json:"meta,omitempty"`
	Labels map[string]utils.Label `json:"-"`
}

func NewCandidate(id string) *Candidate {
	return &Candidate{
		ID:     id,
		Meta:   make(map[string]any),
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// Match 是 Ranker 的输出单元：一个候选在一个 Subject 下的得分与解释。
// 每次请求即时计算，不持久化；Candidate 字段只是引用，不会被修改。
type Match struct {
	Candidate *Candidate

	// Score 是加权聚合后的总分，0-100 整数。
	Score int

	// Factors 是各维度的子分明细，key 为 factor 名称。
	Factors map[string]ScoreFactor

	// Recommendations 是基于得分合成的建议文本（可选，由 annotate 节点填充）。
	Recommendations []Recommendation

	Labels map[string]utils.Label
}

func NewMatch(c *Candidate) *Match {
	return &Match{
		Candidate: c,
		Factors:   make(map[string]ScoreFactor),
		Labels:    make(map[string]utils.Label),
	}
}

// PutLabel 写入 Match 级 Label。
func (m *Match) PutLabel(key string, lbl utils.Label) {
	if m.Labels == nil {
		m.Labels = make(map[string]utils.Label)
	}
	if old, ok := m.Labels[key]; ok {
		m.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	m.Labels[key] = lbl
}

// Factor 按名称取子分，不存在时返回 (ScoreFactor{}, false)。
func (m *Match) Factor(name string) (ScoreFactor, bool) {
	if m.Factors == nil {
		return ScoreFactor{}, false
	}
	f, ok := m.Factors[name]
	return f, ok
}
