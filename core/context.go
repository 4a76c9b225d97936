package core

import "github.com/rushteam/matchkit/pkg/utils"

// MatchContext 承载主体/场景/请求级信息，贯穿整个 Pipeline 透传。
type MatchContext struct {
	// Subject 是本次匹配的主体画像（线索或意向加盟者）。
	Subject *Subject

	// Scene 标记使用场景，例如 "brand_discovery" / "lead_triage"。
	Scene string

	// Labels 是主体级标签，可驱动整个 Pipeline 行为，
	// 例如：新用户、价格敏感、重点区域等。
	Labels map[string]utils.Label

	// Params 是请求级上下文参数（page_size、实验开关等）。
	Params map[string]any
}

// PutLabel 写入主体级 Label。
func (mctx *MatchContext) PutLabel(key string, lbl utils.Label) {
	if mctx.Labels == nil {
		mctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := mctx.Labels[key]; ok {
		mctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	mctx.Labels[key] = lbl
}

// GetLabel 获取主体级 Label。
func (mctx *MatchContext) GetLabel(key string) (utils.Label, bool) {
	if mctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := mctx.Labels[key]
	return lbl, ok
}

// Param 读取请求级参数，不存在时返回 nil。
func (mctx *MatchContext) Param(key string) any {
	if mctx.Params == nil {
		return nil
	}
	return mctx.Params[key]
}
