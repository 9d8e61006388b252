// Package suffix 负责把用户配置的后缀与内置默认后缀合并为最终后缀列表。
// 该包是纯函数实现：不读写全局状态，不做 I/O，可被任意 goroutine 并发调用。
package suffix

import "strings"

// Separator 是默认后缀字符串使用的分隔符。
const Separator = ","

// Resolve 计算某个语言最终识别的后缀列表。
//
// 规则：
// - 用户配置先去掉首尾空白，空白项直接丢弃，保留原有顺序
// - 过滤后为空时，按 "," 拆分 defaultSuffixesCSV 作为候选（不做 trim）
// - 每个后缀若不以 "." 开头则补一个 "."
// - 不去重，重复项原样交给调用方
//
// defaultSuffixesCSV 为空字符串时视为没有任何默认后缀，返回空切片。
func Resolve(userSuffixes []string, defaultSuffixesCSV string) []string {
	working := Filter(userSuffixes)
	if len(working) == 0 {
		working = splitDefaults(defaultSuffixesCSV)
	}
	return Normalize(working)
}

// Filter 去掉空白项并返回 trim 后的结果，顺序与输入一致。
func Filter(raw []string) []string {
	filtered := make([]string, 0, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		filtered = append(filtered, trimmed)
	}
	return filtered
}

// Normalize 为每个后缀补齐前导 "."，已经带点的后缀保持不变。
// 返回新切片，不修改入参。
func Normalize(suffixes []string) []string {
	normalized := make([]string, 0, len(suffixes))
	for _, item := range suffixes {
		normalized = append(normalized, normalizeSuffix(item))
	}
	return normalized
}

func normalizeSuffix(s string) string {
	if strings.HasPrefix(s, ".") {
		return s
	}
	return "." + s
}

// splitDefaults 按分隔符拆分默认值。
// strings.Split("", ",") 会返回 [""]，这里单独处理成空列表。
func splitDefaults(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, Separator)
}
