package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示已注册语言以及解析后的文件后缀。
func newLanguageCmd(state *app) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已注册语言及后缀",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tKEY\tSUFFIXES"); err != nil {
				return err
			}

			for _, item := range state.registry.Languages() {
				if _, err := fmt.Fprintf(writer, "%s\t%s\t%s\n", item.Name, item.Key, strings.Join(item.Suffixes, ", ")); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
