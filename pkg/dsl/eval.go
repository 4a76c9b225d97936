package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/matchkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("match", cel.DynType),
		cel.Variable("factor", cel.DynType),
		cel.Variable("subject", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是匹配规则 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// 用于在内置建议规则之外，让运营以表达式形式追加自定义建议/过滤条件。
//
// 表达式语法（CEL 标准语法）：
//   - 总分：match.score >= 80 / match.score < 40
//   - 子分：factor.budget < 50 / factor.location >= 70
//   - 主体：subject.budget == "₹100K - ₹250K" / subject.city != ""
//   - 组合：factor.budget < 50 && match.score >= 60
//
// 示例：
//   - `factor.industry >= 80 && factor.location < 40` → 行业契合但区域缺位
//   - `match.score >= 80` → 高质量匹配
type Eval struct {
	match   *core.Match
	subject *core.Subject
	env     *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(match *core.Match, subject *core.Subject) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		match:   match,
		subject: subject,
		env:     env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式视为恒真；表达式必须返回布尔值。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 访问不存在的 key 时 CEL 会返回错误；
		// 规则作者应使用 factor.key != null 检查存在性
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]any {
	// factor 提供 name -> 子分 的扁平访问，例如 factor.budget
	factorAccessor := make(map[string]any)
	factors := make(map[string]any)
	if e.match != nil {
		for name, f := range e.match.Factors {
			factorAccessor[name] = f.Score
			factors[name] = map[string]any{
				"score":  f.Score,
				"weight": f.Weight,
				"detail": f.Detail,
			}
		}
	}

	match := map[string]any{}
	if e.match != nil {
		match["score"] = e.match.Score
		match["factors"] = factors
		if e.match.Candidate != nil {
			match["candidate_id"] = e.match.Candidate.ID
			match["candidate_name"] = e.match.Candidate.Name
		}
	}

	subject := map[string]any{}
	if e.subject != nil {
		subject["id"] = e.subject.ID
		subject["budget"] = e.subject.Budget
		subject["timeline"] = e.subject.Timeline
		subject["experience"] = e.subject.Experience
		subject["city"] = e.subject.City
		subject["state"] = e.subject.State
		subject["country"] = e.subject.Country
		subject["interests"] = e.subject.Interests
	}

	return map[string]any{
		"match":   match,
		"factor":  factorAccessor,
		"subject": subject,
	}
}
