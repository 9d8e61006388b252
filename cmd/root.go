// Package cmd 提供 groovylang 的命令行入口与子命令编排。
package cmd

import (
	"errors"
	"strings"

	"groovylang/internal/languages"
	"groovylang/internal/log"
	"groovylang/internal/settings"

	"github.com/spf13/cobra"
)

// app 保存全局参数以及根据参数构建出的注册中心。
// registry 在 PersistentPreRunE 中创建，子命令只在 RunE 中读取。
type app struct {
	settingsPath string
	suffixes     []string
	verbosity    int
	logFormat    string

	registry *languages.Registry
}

// Execute 组装根命令并执行。
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
func newRootCmd(version string) *cobra.Command {
	state := &app{logFormat: "text", verbosity: log.VerbosityWarn}

	rootCmd := &cobra.Command{
		Use:   "groovylang",
		Short: "Groovy 语言描述与文件后缀解析工具",
		Long: "groovylang 根据配置解析 Groovy 语言识别的文件后缀，\n" +
			"并可按解析结果对目录中的文件进行分类。",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.prepare(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&state.settingsPath, "settings", "", "YAML 配置文件路径")
	flags.StringArrayVar(&state.suffixes, "suffix", nil, "覆盖 "+languages.GroovyFileSuffixesKey+"，可重复或用逗号分隔")
	flags.IntVarP(&state.verbosity, "verbosity", "v", state.verbosity, "日志级别: 0=error 1=warn 2=info 3=debug")
	flags.StringVar(&state.logFormat, "log-format", state.logFormat, "日志格式: text 或 json")

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(state))
	rootCmd.AddCommand(newSuffixesCmd(state))
	rootCmd.AddCommand(newClassifyCmd(state))

	return rootCmd
}

// prepare 初始化日志、加载配置并构建注册中心。
func (a *app) prepare(cmd *cobra.Command) error {
	format := strings.ToLower(strings.TrimSpace(a.logFormat))
	if format != "text" && format != "json" {
		return errors.New("unsupported log format, allowed values: text, json")
	}
	log.Init(a.verbosity, format, cmd.ErrOrStderr())

	store := settings.New()
	if path := strings.TrimSpace(a.settingsPath); path != "" {
		loaded, err := settings.Load(path)
		if err != nil {
			return err
		}
		store = loaded
		log.Logger().Info("settings loaded", "path", path, "keys", len(store.Keys()))
	}

	// 命令行参数优先于配置文件
	if flag := cmd.Flag("suffix"); flag != nil && flag.Changed {
		store.Set(languages.GroovyFileSuffixesKey, splitSuffixFlag(a.suffixes)...)
	}

	a.registry = languages.NewRegistry(languages.NewGroovy(store, log.Component("groovy")))
	return nil
}

// splitSuffixFlag 按 "," 拆分每个 --suffix 取值，与配置文件中标量的处理一致。
// 不按 CSV 解析，引号等字符原样保留。
func splitSuffixFlag(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		result = append(result, strings.Split(value, ",")...)
	}
	return result
}
