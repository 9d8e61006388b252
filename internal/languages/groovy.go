package languages

import (
	"log/slog"

	"groovylang/internal/suffix"
)

// Groovy 插件常量。
const (
	GroovyKey                 = "grvy"
	GroovyName                = "Groovy"
	GroovyFileSuffixesKey     = "sonar.groovy.file.suffixes"
	GroovyDefaultFileSuffixes = ".groovy"
)

// SuffixSource 是后缀配置的读取方，*settings.Settings 满足该接口。
type SuffixSource interface {
	StringArray(key string) []string
}

// GroovyLanguage 是 Groovy 的语言描述。
// 通过组合配置源与插件常量实现 Language，不缓存解析结果。
type GroovyLanguage struct {
	source SuffixSource
	logger *slog.Logger
}

// NewGroovy 创建 Groovy 语言描述。source 为 nil 时等同于空配置。
func NewGroovy(source SuffixSource, logger *slog.Logger) *GroovyLanguage {
	if logger == nil {
		logger = slog.Default()
	}
	return &GroovyLanguage{source: source, logger: logger}
}

// Key 返回语言 key。
func (g *GroovyLanguage) Key() string {
	return GroovyKey
}

// Name 返回展示名称。
func (g *GroovyLanguage) Name() string {
	return GroovyName
}

// FileSuffixes 每次调用都重新解析配置。
func (g *GroovyLanguage) FileSuffixes() []string {
	var configured []string
	if g.source != nil {
		configured = g.source.StringArray(GroovyFileSuffixesKey)
	}

	filtered := suffix.Filter(configured)
	if len(filtered) > 0 {
		return suffix.Normalize(filtered)
	}

	g.logger.Debug("no groovy suffixes configured, using defaults",
		"key", GroovyFileSuffixesKey,
		"defaults", GroovyDefaultFileSuffixes,
	)
	return suffix.Resolve(nil, GroovyDefaultFileSuffixes)
}
