// Package classifier 按语言后缀对目录中的文件进行分类。
// 该层负责目录遍历、exclude 过滤、任务分发和结果聚合，不读取文件内容。
package classifier

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"groovylang/internal/languages"
	"groovylang/internal/model"

	"github.com/bmatcuk/doublestar/v4"
)

// Options 是分类服务的可选参数。
type Options struct {
	// Workers 为并发 worker 数量，<=0 时取 CPU 数。
	Workers int
	// Excludes 是 doublestar 语法的排除规则，匹配相对于扫描根目录的 slash 路径。
	Excludes []string
	// Logger 为 nil 时使用 slog.Default()。
	Logger *slog.Logger
}

// Service 是分类服务对象。
type Service struct {
	registry *languages.Registry
	workers  int
	excludes []string
	logger   *slog.Logger
}

type classifyTask struct {
	absolutePath string
	displayPath  string
	match        languages.Match
}

type workerResult struct {
	file      *model.FileMatch
	fileError *model.ClassifyError
}

// walkOutcome 由遍历 goroutine 在结束时一次性回传。
// failures 记录无法遍历的路径，与 worker 的单文件错误一样不阻断分类。
type walkOutcome struct {
	err       error
	failures  []model.ClassifyError
	excluded  int64
	unmatched int64
}

// NewService 创建分类服务。
func NewService(registry *languages.Registry, options Options) *Service {
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		registry: registry,
		workers:  workers,
		excludes: append([]string(nil), options.Excludes...),
		logger:   logger,
	}
}

// ValidatePatterns 检查 exclude 规则是否是合法的 doublestar 模式。
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %q", pattern)
		}
	}
	return nil
}

// ClassifyPath 分类目录或单文件。
func (s *Service) ClassifyPath(targetPath string) (model.ClassifyResult, error) {
	var result model.ClassifyResult

	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return result, errors.New("classify path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return result, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return result, fmt.Errorf("stat path: %w", err)
	}

	result.ScannedPath = absoluteTarget

	tasks := make(chan classifyTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkDone := make(chan walkOutcome, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		if info.IsDir() {
			walkDone <- s.enqueueDirectoryTasks(absoluteTarget, tasks)
			return
		}
		walkDone <- walkOutcome{err: s.enqueueSingleFileTask(absoluteTarget, tasks)}
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.FileMatch, 0)
	result.Errors = make([]model.ClassifyError, 0)

	for item := range results {
		if item.file != nil {
			result.Files = append(result.Files, *item.file)
		}
		if item.fileError != nil {
			result.Errors = append(result.Errors, *item.fileError)
		}
	}

	outcome := <-walkDone
	if outcome.err != nil {
		return result, outcome.err
	}

	result.Errors = append(result.Errors, outcome.failures...)
	s.buildSummaries(&result)
	result.Total.Excluded = outcome.excluded
	result.Total.Unmatched = outcome.unmatched

	s.logger.Info("classification finished",
		"path", absoluteTarget,
		"files", result.Total.Files,
		"excluded", outcome.excluded,
		"unmatched", outcome.unmatched,
		"errors", len(result.Errors),
	)
	return result, nil
}

// enqueueDirectoryTasks 遍历目录，把可识别的文件推入任务队列。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- classifyTask) walkOutcome {
	var outcome walkOutcome
	outcome.err = filepath.WalkDir(root, s.visit(root, tasks, &outcome))
	return outcome
}

// visit 返回 WalkDir 的回调。
// 遍历错误记入 outcome.failures；出错的目录整体跳过，其余路径继续遍历。
func (s *Service) visit(root string, tasks chan<- classifyTask, outcome *walkOutcome) fs.WalkDirFunc {
	return func(path string, entry fs.DirEntry, walkErr error) error {
		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)

		if walkErr != nil {
			outcome.failures = append(outcome.failures, model.ClassifyError{
				Path:  relativePath,
				Error: walkErr.Error(),
			})
			s.logger.Warn("walk failed", "path", relativePath, "error", walkErr)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if relativePath != "." && s.isExcluded(relativePath) {
			outcome.excluded++
			s.logger.Debug("path excluded", "path", relativePath)
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		match, ok := s.registry.LanguageForFile(path)
		if !ok {
			outcome.unmatched++
			return nil
		}

		tasks <- classifyTask{
			absolutePath: path,
			displayPath:  relativePath,
			match:        match,
		}
		return nil
	}
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务，exclude 规则不生效。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- classifyTask) error {
	match, ok := s.registry.LanguageForFile(filePath)
	if !ok {
		return fmt.Errorf("unsupported file suffix: %s", filepath.Base(filePath))
	}

	tasks <- classifyTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
		match:        match,
	}
	return nil
}

func (s *Service) isExcluded(relativePath string) bool {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, relativePath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// runWorker 读取文件元数据并生成识别结果。
func (s *Service) runWorker(tasks <-chan classifyTask, results chan<- workerResult) {
	for task := range tasks {
		info, err := os.Stat(task.absolutePath)
		if err != nil {
			results <- workerResult{
				fileError: &model.ClassifyError{
					Path:  task.displayPath,
					Error: err.Error(),
				},
			}
			continue
		}

		results <- workerResult{
			file: &model.FileMatch{
				Path:        task.displayPath,
				Language:    task.match.Language.Name(),
				LanguageKey: task.match.Language.Key(),
				Suffix:      task.match.Suffix,
				Size:        info.Size(),
			},
		}
	}
}

// buildSummaries 计算语言级汇总和总计信息。
func (s *Service) buildSummaries(result *model.ClassifyResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	byLanguage := make(map[string]*model.LanguageSummary)
	result.Total = model.TotalSummary{}

	for _, item := range result.Files {
		result.Total.AddFile(item.Size)

		summary, ok := byLanguage[item.LanguageKey]
		if !ok {
			summary = &model.LanguageSummary{
				Language: item.Language,
				Key:      item.LanguageKey,
				Suffixes: s.registry.SuffixesForLanguage(item.LanguageKey),
			}
			byLanguage[item.LanguageKey] = summary
		}

		summary.Files++
		summary.Bytes += item.Size
	}

	result.Languages = make([]model.LanguageSummary, 0, len(byLanguage))
	for _, item := range byLanguage {
		result.Languages = append(result.Languages, *item)
	}

	sort.Slice(result.Languages, func(i int, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})
}
