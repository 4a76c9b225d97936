// Package refdata 提供匹配引擎依赖的固定参照数据：
// 有序类目域（投资区间、时间档位、经验水平）与行业邻接表。
//
// 设计要点：
//   - 类目的"序数位置"是一等概念：位置差即语义距离（相邻档位更接近）
//   - 未知取值不报错：PositionOf 返回 (0, false)，由调用方回退中性默认分
//   - 全部数据不可变，可并发读取
package refdata

// Domain 是一个固定的有序类目域，位置隐含相对距离。
// 例如时间档位中 "Within 3 months" 比 "Just exploring" 更接近 "As soon as possible"。
type Domain struct {
	name   string
	values []string
	index  map[string]int
}

// NewDomain 基于有序取值列表构建类目域。values 的顺序即序数顺序。
func NewDomain(name string, values ...string) *Domain {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return &Domain{name: name, values: values, index: index}
}

// Name 返回类目域名称。
func (d *Domain) Name() string { return d.name }

// Len 返回类目档位数量。
func (d *Domain) Len() int { return len(d.values) }

// Values 返回有序取值列表的副本（防止调用方改动参照数据）。
func (d *Domain) Values() []string {
	out := make([]string, len(d.values))
	copy(out, d.values)
	return out
}

// PositionOf 返回 value 在域内的序数位置。
// 未知/历史遗留取值返回 (0, false)，调用方应回退到该维度的中性默认分。
func (d *Domain) PositionOf(value string) (int, bool) {
	i, ok := d.index[value]
	return i, ok
}

// Distance 返回两个取值的序数距离（绝对值）。
// 任一取值未知时返回 (0, false)。
func (d *Domain) Distance(a, b string) (int, bool) {
	ia, ok := d.index[a]
	if !ok {
		return 0, false
	}
	ib, ok := d.index[b]
	if !ok {
		return 0, false
	}
	if ia > ib {
		return ia - ib, true
	}
	return ib - ia, true
}
