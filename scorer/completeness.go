package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rushteam/matchkit/core"
	"github.com/rushteam/matchkit/refdata"
)

// Completeness 计算主体画像的完整度：
// 0.7 * (已填必填 / 必填总数) + 0.3 * (已填选填 / 选填总数)，换算为 0-100 取整。
//
// "已填"的判定：trim 后非空的字符串，或非空的集合/对象。
// 字段列表可配置；零值使用 refdata 中的默认字段集（7 必填 + 3 选填）。
type Completeness struct {
	Required []string // 必填字段，空则用 refdata.DefaultRequiredProfileFields
	Optional []string // 选填字段，空则用 refdata.DefaultOptionalProfileFields
}

func (Completeness) Name() string { return FactorCompleteness }

func (s Completeness) Score(subject *core.Subject, _ *core.Candidate) (float64, string) {
	required := s.Required
	if len(required) == 0 {
		required = refdata.DefaultRequiredProfileFields
	}
	optional := s.Optional
	if len(optional) == 0 {
		optional = refdata.DefaultOptionalProfileFields
	}

	filledRequired := countFilled(subject, required)
	filledOptional := countFilled(subject, optional)

	requiredRatio := ratio(filledRequired, len(required))
	optionalRatio := ratio(filledOptional, len(optional))

	score := math.Round((0.7*requiredRatio + 0.3*optionalRatio) * 100)
	detail := fmt.Sprintf("%d/%d required, %d/%d optional fields filled",
		filledRequired, len(required), filledOptional, len(optional))
	return score, detail
}

func countFilled(subject *core.Subject, fields []string) int {
	if subject == nil {
		return 0
	}
	n := 0
	for _, f := range fields {
		if isFilled(subject.Attr(f)) {
			n++
		}
	}
	return n
}

func ratio(filled, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(filled) / float64(total)
}

// isFilled 判定一个字段值是否算"已填写"。
func isFilled(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}
