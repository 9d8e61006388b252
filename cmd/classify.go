package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"groovylang/internal/classifier"
	"groovylang/internal/log"
	"groovylang/internal/report"

	"github.com/spf13/cobra"
)

// classifyOptions 存放 classify 命令的可配置参数。
type classifyOptions struct {
	format   string
	output   string
	workers  int
	excludes []string
}

// newClassifyCmd 创建 classify 子命令。
// 示例：
//
//	groovylang classify .
//	groovylang classify ./project --exclude 'build/**' --format json --output result.json
func newClassifyCmd(state *app) *cobra.Command {
	options := classifyOptions{
		format:  "table",
		output:  "output.json",
		workers: runtime.NumCPU(),
	}

	classifyCmd := &cobra.Command{
		Use:   "classify [path]",
		Short: "按解析后的后缀对目录或文件进行分类",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			if err := classifier.ValidatePatterns(options.excludes); err != nil {
				return err
			}

			service := classifier.NewService(state.registry, classifier.Options{
				Workers:  options.workers,
				Excludes: options.excludes,
				Logger:   log.Component("classifier"),
			})
			result, err := service.ClassifyPath(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return report.PrintTable(cmd.OutOrStdout(), result)
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
				return nil
			default:
				return errors.New("unsupported format")
			}
		},
	}

	classifyCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	classifyCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	classifyCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	classifyCmd.Flags().StringArrayVar(&options.excludes, "exclude", nil, "doublestar 排除规则，相对扫描根目录，可重复")

	return classifyCmd
}
