// Package conv 提供类型转换、map/slice 转换等泛型工具，用于简化配置解析中的重复逻辑。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ToInt 将 any 转为 int。
// 支持 int、int64、int32、float64、float32。
func ToInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	default:
		return 0, false
	}
}

// ToString 将 any 转为 string。
// 仅支持 string 类型，否则返回 ("", false)。
func ToString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ConvertMap 将 map[K]V1 按 convert 转为 map[K]V2，convert 返回 false 的条目被跳过。
func ConvertMap[K comparable, V1, V2 any](m map[K]V1, convert func(V1) (V2, bool)) map[K]V2 {
	if m == nil {
		return nil
	}
	out := make(map[K]V2, len(m))
	for k, v := range m {
		if v2, ok := convert(v); ok {
			out[k] = v2
		}
	}
	return out
}

// MapToFloat64 将 map[string]any 转为 map[string]float64，仅保留可转为 float64 的 value。
func MapToFloat64(m map[string]any) map[string]float64 {
	return ConvertMap(m, func(v any) (float64, bool) { return ToFloat64(v) })
}

// ConvertSlice 将 []T 按 convert 转为 []U，convert 返回 false 的元素被跳过。
func ConvertSlice[T, U any](s []T, convert func(T) (U, bool)) []U {
	if s == nil {
		return nil
	}
	out := make([]U, 0, len(s))
	for _, v := range s {
		if u, ok := convert(v); ok {
			out = append(out, u)
		}
	}
	return out
}

// SliceAnyToString 将 []any 转为 []string，非 string 元素被跳过。
// 常用于解析 YAML 配置中的字符串列表。
func SliceAnyToString(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	return ConvertSlice(items, func(e any) (string, bool) { return ToString(e) })
}

// ConfigGet 从 map[string]any 配置中读取 T 类型的值，缺失或类型不符时返回 fallback。
func ConfigGet[T any](config map[string]any, key string, fallback T) T {
	if config == nil {
		return fallback
	}
	v, ok := config[key]
	if !ok {
		return fallback
	}
	if t, ok := v.(T); ok {
		return t
	}
	return fallback
}

// ConfigGetInt64 从配置中读取整数，兼容 YAML 解析出的 int / int64 / float64。
func ConfigGetInt64(config map[string]any, key string, fallback int64) int64 {
	if config == nil {
		return fallback
	}
	v, ok := config[key]
	if !ok {
		return fallback
	}
	if n, ok := ToInt(v); ok {
		return int64(n)
	}
	return fallback
}

// ConfigGetFloat64 从配置中读取浮点数，兼容 int / float 形态。
func ConfigGetFloat64(config map[string]any, key string, fallback float64) float64 {
	if config == nil {
		return fallback
	}
	v, ok := config[key]
	if !ok {
		return fallback
	}
	if f, ok := ToFloat64(v); ok {
		return f
	}
	return fallback
}
