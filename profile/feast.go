package profile

import (
	"context"
	"strings"

	feastsdk "github.com/feast-dev/feast/sdk/go"
	"github.com/feast-dev/feast/sdk/go/protos/feast/types"

	"github.com/rushteam/matchkit/core"
)

// 画像特征的约定名称。FeastLoader 按这些名称识别内建字段，
// 其余特征落入 Subject.Attrs。
const (
	featureBudget     = "budget"
	featureTimeline   = "timeline"
	featureExperience = "experience"
	featureCity       = "city"
	featureState      = "state"
	featureCountry    = "country"
	featureInterests  = "interests"
)

// DefaultProfileFeatures 是画像特征视图的默认特征引用。
func DefaultProfileFeatures(view string) []string {
	names := []string{
		featureBudget, featureTimeline, featureExperience,
		featureCity, featureState, featureCountry, featureInterests,
	}
	refs := make([]string, 0, len(names))
	for _, n := range names {
		if view != "" {
			refs = append(refs, view+":"+n)
			continue
		}
		refs = append(refs, n)
	}
	return refs
}

// FeastLoader 从 Feast 在线特征库加载主体画像。
// 线索在 CRM 侧被特征化后写入 Feast，匹配请求按实体 ID 实时取画像。
type FeastLoader struct {
	client *feastsdk.GrpcClient

	// Project 是 Feast 项目名。
	Project string

	// EntityKey 是实体主键名，例如 "lead_id"。
	EntityKey string

	// Features 是要拉取的特征引用列表，
	// 为空时使用 DefaultProfileFeatures("")。
	Features []string
}

// NewFeastLoader 连接 Feast Feature Server（gRPC，默认端口 6565）。
func NewFeastLoader(host string, port int, project, entityKey string) (*FeastLoader, error) {
	if port == 0 {
		port = 6565
	}
	client, err := feastsdk.NewGrpcClient(host, port)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeUnavailable, "profile: feast connect: "+err.Error())
	}
	return &FeastLoader{
		client:    client,
		Project:   project,
		EntityKey: entityKey,
	}, nil
}

func (l *FeastLoader) Name() string { return "profile.feast" }

func (l *FeastLoader) Load(ctx context.Context, id string) (*core.Subject, error) {
	if l.client == nil {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeUnavailable, "profile: feast client not initialized")
	}
	entityKey := l.EntityKey
	if entityKey == "" {
		entityKey = "lead_id"
	}
	features := l.Features
	if len(features) == 0 {
		features = DefaultProfileFeatures("")
	}

	req := &feastsdk.OnlineFeaturesRequest{
		Features: features,
		Entities: []feastsdk.Row{
			{entityKey: feastsdk.StrVal(id)},
		},
		Project: l.Project,
	}
	resp, err := l.client.GetOnlineFeatures(ctx, req)
	if err != nil {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeUnavailable, "profile: feast get online features: "+err.Error())
	}

	rows := resp.Rows()
	if len(rows) == 0 {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeNotFound, "profile: subject not found: "+id)
	}

	subject := core.NewSubject(id)
	for ref, val := range rows[0] {
		if ref == entityKey {
			continue
		}
		l.assign(subject, featureName(ref), val)
	}
	return subject, nil
}

func (l *FeastLoader) Close() error {
	l.client = nil
	return nil
}

// featureName 去掉特征引用中的视图前缀："lead_profile:budget" -> "budget"。
func featureName(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

func (l *FeastLoader) assign(s *core.Subject, name string, val *types.Value) {
	switch name {
	case featureBudget:
		s.Budget = stringValue(val)
	case featureTimeline:
		s.Timeline = stringValue(val)
	case featureExperience:
		s.Experience = stringValue(val)
	case featureCity:
		s.City = stringValue(val)
	case featureState:
		s.State = stringValue(val)
	case featureCountry:
		s.Country = stringValue(val)
	case featureInterests:
		s.Interests = stringListValue(val)
	default:
		if v := anyValue(val); v != nil {
			s.SetAttr(name, v)
		}
	}
}

func stringValue(val *types.Value) string {
	if val == nil {
		return ""
	}
	return val.GetStringVal()
}

func stringListValue(val *types.Value) []string {
	if val == nil {
		return nil
	}
	if list := val.GetStringListVal(); list != nil {
		return list.GetVal()
	}
	// 兼容以逗号连接的单值写法
	if s := val.GetStringVal(); s != "" {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}

func anyValue(val *types.Value) any {
	if val == nil {
		return nil
	}
	switch v := val.GetVal().(type) {
	case *types.Value_StringVal:
		return v.StringVal
	case *types.Value_Int64Val:
		return v.Int64Val
	case *types.Value_Int32Val:
		return int64(v.Int32Val)
	case *types.Value_DoubleVal:
		return v.DoubleVal
	case *types.Value_FloatVal:
		return float64(v.FloatVal)
	case *types.Value_BoolVal:
		return v.BoolVal
	case *types.Value_BytesVal:
		return string(v.BytesVal)
	case *types.Value_StringListVal:
		return v.StringListVal.GetVal()
	default:
		return nil
	}
}
