// Package rank 提供权重聚合、等级/优先级分类与排序：
// 把 scorer 产出的各维度子分变成可供运营与 UI 消费的总分、档位与有序结果。
package rank

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/scorer"
)

// Weights 是一张命名权重表：factor 名称 -> 权重（0-1）。
//
// 两个内置场景（线索评分 / 品牌匹配）各自独立调优：
// 线索评分里预算权重最高；品牌匹配里地理位置升至第二位。
// 它们是两张表，不要合并成一个默认值。
type Weights struct {
	Name   string             `yaml:"name"`
	Values map[string]float64 `yaml:"values"`
}

// LeadScoringWeights 返回线索评分场景的权重表（合计 1.00）。
func LeadScoringWeights() Weights {
	return Weights{
		Name: "lead_scoring",
		Values: map[string]float64{
			scorer.FactorBudget:       0.30,
			scorer.FactorTimeline:     0.25,
			scorer.FactorExperience:   0.20,
			scorer.FactorLocation:     0.15,
			scorer.FactorCompleteness: 0.10,
		},
	}
}

// BrandMatchWeights 返回品牌匹配场景的权重表（合计 1.00）。
func BrandMatchWeights() Weights {
	return Weights{
		Name: "brand_match",
		Values: map[string]float64{
			scorer.FactorBudget:     0.30,
			scorer.FactorLocation:   0.25,
			scorer.FactorIndustry:   0.20,
			scorer.FactorExperience: 0.15,
			scorer.FactorTimeline:   0.10,
		},
	}
}

// Sum 返回权重合计。
func (w Weights) Sum() float64 {
	total := 0.0
	for _, v := range w.Values {
		total += v
	}
	return total
}

// Validate 校验权重表：非空且合计为 1.0（容忍 ±0.01 的浮点误差）。
func (w Weights) Validate() error {
	if len(w.Values) == 0 {
		return core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("weights %q: empty", w.Name))
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > 0.01 {
		return core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
			fmt.Sprintf("weights %q: sum %.4f, want 1.0", w.Name, sum))
	}
	return nil
}

// weightsFile 是权重 YAML 文件的根结构。
type weightsFile struct {
	Weights Weights `yaml:"weights"`
}

// LoadWeightsFromYAML 从 YAML 文件加载权重表并校验。
//
// 文件格式：
//
//	weights:
//	  name: custom
//	  values:
//	    budget: 0.3
//	    location: 0.25
//	    ...
func LoadWeightsFromYAML(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read file: %w", err)
	}

	var f weightsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Weights{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := f.Weights.Validate(); err != nil {
		return Weights{}, err
	}
	return f.Weights, nil
}
