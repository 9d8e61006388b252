package cmd

import (
	"fmt"

	"groovylang/internal/languages"

	"github.com/spf13/cobra"
)

// newSuffixesCmd 创建 suffixes 子命令，逐行输出某个语言解析后的后缀。
// 示例：
//
//	groovylang suffixes
//	groovylang suffixes grvy --suffix groovy,gvy
func newSuffixesCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suffixes [language-key]",
		Short: "逐行输出解析后的文件后缀",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := languages.GroovyKey
			if len(args) == 1 {
				key = args[0]
			}

			if _, ok := state.registry.Lookup(key); !ok {
				return fmt.Errorf("unknown language key: %s", key)
			}

			for _, item := range state.registry.SuffixesForLanguage(key) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
