// Package languages 定义语言描述接口、Groovy 语言实现以及按后缀查找语言的注册中心。
package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// Language 描述一个可按文件后缀识别的语言。
type Language interface {
	// Key 返回语言的短 key（例如 grvy）。
	Key() string
	// Name 返回语言展示名称（例如 Groovy）。
	Name() string
	// FileSuffixes 返回带点号的后缀列表，顺序有意义，可能包含重复项。
	FileSuffixes() []string
}

// Descriptor 用于对外展示语言及后缀信息。
type Descriptor struct {
	Key      string
	Name     string
	Suffixes []string
}

// Match 是一次文件识别的结果。
type Match struct {
	Language Language
	Suffix   string
}

// Registry 管理语言注册与后缀匹配。
// 后缀在构建时解析一次，之后只读，可并发查询。
type Registry struct {
	languages []Language
	suffixes  map[string][]string
	rules     []suffixRule
}

// suffixRule 是一条后缀到语言的映射。
// lowered 用于匹配，suffix 保留配置时的写法用于展示。
type suffixRule struct {
	suffix   string
	lowered  string
	language Language
}

// NewRegistry 注册给定语言并展开后缀规则。
// 同一后缀被多个语言声明时，先注册者优先；同一语言内的重复后缀只保留一条规则。
func NewRegistry(langs ...Language) *Registry {
	registry := &Registry{
		languages: append([]Language(nil), langs...),
		suffixes:  make(map[string][]string, len(langs)),
	}

	seen := make(map[string]bool)
	for _, language := range registry.languages {
		resolved := language.FileSuffixes()
		registry.suffixes[language.Key()] = resolved

		for _, item := range resolved {
			lowered := strings.ToLower(item)
			if seen[lowered] {
				continue
			}
			seen[lowered] = true
			registry.rules = append(registry.rules, suffixRule{suffix: item, lowered: lowered, language: language})
		}
	}

	// 长后缀优先，例如 .gradle.kts 应先于 .kts 匹配；稳定排序保留注册顺序。
	sort.SliceStable(registry.rules, func(i int, j int) bool {
		return len(registry.rules[i].lowered) > len(registry.rules[j].lowered)
	})

	return registry
}

// LanguageForFile 根据文件名后缀查找语言，匹配不区分大小写。
// 返回的 Suffix 与 SuffixesForLanguage 中的写法一致。
func (r *Registry) LanguageForFile(path string) (Match, bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, rule := range r.rules {
		if strings.HasSuffix(name, rule.lowered) {
			return Match{Language: rule.language, Suffix: rule.suffix}, true
		}
	}
	return Match{}, false
}

// Lookup 按 key 查找语言。
func (r *Registry) Lookup(key string) (Language, bool) {
	for _, language := range r.languages {
		if language.Key() == key {
			return language, true
		}
	}
	return nil, false
}

// Languages 返回按名称排序的语言清单，后缀保持解析顺序。
func (r *Registry) Languages() []Descriptor {
	result := make([]Descriptor, 0, len(r.languages))
	for _, language := range r.languages {
		result = append(result, Descriptor{
			Key:      language.Key(),
			Name:     language.Name(),
			Suffixes: r.SuffixesForLanguage(language.Key()),
		})
	}

	sort.SliceStable(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// SuffixesForLanguage 返回指定语言解析后的后缀，未知语言返回 nil。
func (r *Registry) SuffixesForLanguage(key string) []string {
	suffixes, ok := r.suffixes[key]
	if !ok {
		return nil
	}
	result := make([]string, len(suffixes))
	copy(result, suffixes)
	return result
}
