package core

import "strings"

// Subject 是评分的主体画像：一条入站线索，或一个寻找品牌的意向加盟者。
//
// 一句话定义：Subject = 匹配 Pipeline 的"全局上下文 + 评分输入"。
//
// 它不是某一个 Node，而是：
//   - 被所有 Scorer 共享
//   - 驱动 Budget / Timeline / Experience / Location / Industry 各维度
//   - 引擎对它只读，字段缺失时各 Scorer 回退到中性默认分
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Budget 是意向投资区间，取值来自 refdata.InvestmentBands。
	Budget string `json:"budget,omitempty"`

	// Timeline 是期望启动时间档位，取值来自 refdata.Timelines。
	Timeline string `json:"timeline,omitempty"`

	// Experience 是自述经验水平，取值来自 refdata.ExperienceLevels。
	Experience string `json:"experience,omitempty"`

	// 目标地点
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`

	// Interests 是意向行业/兴趣列表。
	Interests []string `json:"interests,omitempty"`

	// Attrs 承载表单层的其余属性（电话、邮箱、备注等），
	// 用于完整度评分与自定义规则；引擎不理解其语义。
	Attrs map[string]any `json:"attrs,omitempty"`
}

func NewSubject(id string) *Subject {
	return &Subject{
		ID:    id,
		Attrs: make(map[string]any),
	}
}

// Attr 按字段名取属性值：先解析内建字段，再查 Attrs。
// 完整度评分通过它统一访问必填/选填字段。
func (s *Subject) Attr(name string) any {
	switch strings.ToLower(name) {
	case "name":
		return s.Name
	case "budget":
		return s.Budget
	case "timeline":
		return s.Timeline
	case "experience":
		return s.Experience
	case "city":
		return s.City
	case "state":
		return s.State
	case "country":
		return s.Country
	case "location":
		// location 视为 city/state 任一存在即已填写
		if strings.TrimSpace(s.City) != "" {
			return s.City
		}
		return s.State
	case "interests":
		return s.Interests
	}
	if s.Attrs == nil {
		return nil
	}
	return s.Attrs[name]
}

// SetAttr 写入表单属性。
func (s *Subject) SetAttr(name string, value any) {
	if s.Attrs == nil {
		s.Attrs = make(map[string]any)
	}
	s.Attrs[name] = value
}
