// Package profile 负责把外部画像数据装配成 core.Subject。
// 引擎本身不关心画像从哪来：静态内存、存储、特征平台都通过 Loader 接入。
package profile

import (
	"context"
	"encoding/json"

	"github.com/rushteam/matchkit/core"
)

// Loader 按 ID 加载匹配主体（申请人/线索）的画像。
type Loader interface {
	Name() string
	Load(ctx context.Context, id string) (*core.Subject, error)
}

// StaticLoader 是内存 Loader，用于测试与演示。
type StaticLoader struct {
	Subjects map[string]*core.Subject
}

func (l *StaticLoader) Name() string { return "profile.static" }

func (l *StaticLoader) Load(_ context.Context, id string) (*core.Subject, error) {
	s, ok := l.Subjects[id]
	if !ok {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeNotFound, "profile: subject not found: "+id)
	}
	return s, nil
}

// StoreLoader 从 Store 的画像 Hash 读取主体 JSON。
// key 形如 "lead:profile"，field 为主体 ID。
type StoreLoader struct {
	Store core.KeyValueStore
	Key   string
}

func (l *StoreLoader) Name() string { return "profile.store" }

func (l *StoreLoader) Load(ctx context.Context, id string) (*core.Subject, error) {
	if l.Store == nil || l.Key == "" {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeInvalidInput, "profile: store or key not set")
	}
	data, err := l.Store.HGet(ctx, l.Key, id)
	if err != nil {
		return nil, err
	}
	s := core.NewSubject(id)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, core.NewDomainError(core.ModuleProfile, core.ErrorCodeInternalError, "profile: decode subject: "+err.Error())
	}
	if s.ID == "" {
		s.ID = id
	}
	return s, nil
}
