// Package model 定义文件分类结果的数据模型。
// 这些结构会被分类器、输出层和命令层共同使用。
package model

// FileMatch 表示一个被某语言识别的文件。
type FileMatch struct {
	Path        string `json:"path"`
	Language    string `json:"language"`
	LanguageKey string `json:"language_key"`
	Suffix      string `json:"suffix"`
	Size        int64  `json:"size"`
}

// LanguageSummary 表示某个语言的聚合结果。
type LanguageSummary struct {
	Language string   `json:"language"`
	Key      string   `json:"key"`
	Suffixes []string `json:"suffixes"`
	Files    int64    `json:"files"`
	Bytes    int64    `json:"bytes"`
}

// ClassifyError 记录单文件处理失败信息，不阻断整体分类。
type ClassifyError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// TotalSummary 表示项目级总计。
//
// Excluded 统计被 exclude 规则跳过的文件与目录，
// Unmatched 统计没有任何语言声明其后缀的文件。
type TotalSummary struct {
	Files     int64 `json:"files"`
	Bytes     int64 `json:"bytes"`
	Excluded  int64 `json:"excluded"`
	Unmatched int64 `json:"unmatched"`
}

// AddFile 累加一个已识别文件。
func (t *TotalSummary) AddFile(size int64) {
	t.Files++
	t.Bytes += size
}

// ClassifyResult 是 classify 命令的完整输出模型。
type ClassifyResult struct {
	ScannedPath string            `json:"scanned_path"`
	Files       []FileMatch       `json:"files"`
	Languages   []LanguageSummary `json:"languages"`
	Total       TotalSummary      `json:"total"`
	Errors      []ClassifyError   `json:"errors"`
}
