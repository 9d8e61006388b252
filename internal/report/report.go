// Package report 提供分类结果的输出能力。
// 当前实现支持 table 控制台格式和 JSON 格式（含文件导出）。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"groovylang/internal/model"
)

// PrintTable 使用表格展示分类结果。
func PrintTable(writer io.Writer, result model.ClassifyResult) error {
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "SCANNED PATH\t%s\n\n", result.ScannedPath); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(tw, "FILE\tLANGUAGE\tSUFFIX\tBYTES"); err != nil {
		return err
	}
	for _, item := range result.Files {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", item.Path, item.Language, item.Suffix, item.Size); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(tw, "\nLANGUAGE\tKEY\tFILES\tBYTES\tSUFFIXES"); err != nil {
		return err
	}
	for _, item := range result.Languages {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%d\t%d\t%s\n",
			item.Language,
			item.Key,
			item.Files,
			item.Bytes,
			strings.Join(item.Suffixes, ", "),
		); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(
		tw,
		"\nTOTAL\tfiles=%d\tbytes=%d\texcluded=%d\tunmatched=%d\n",
		result.Total.Files,
		result.Total.Bytes,
		result.Total.Excluded,
		result.Total.Unmatched,
	); err != nil {
		return err
	}

	if len(result.Errors) > 0 {
		if _, err := fmt.Fprintln(tw, "\nERROR FILE\tMESSAGE"); err != nil {
			return err
		}
		for _, item := range result.Errors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", item.Path, item.Error); err != nil {
				return err
			}
		}
	}

	return tw.Flush()
}

// PrintJSON 把分类结果按易读 JSON 输出到任意 writer。
func PrintJSON(writer io.Writer, result model.ClassifyResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// WriteJSONFile 将 JSON 结果导出到指定路径，目录不存在会自动创建。
func WriteJSONFile(path string, result model.ClassifyResult) error {
	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	directory := filepath.Dir(path)
	if directory != "." && directory != "" {
		if mkErr := os.MkdirAll(directory, 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	if writeErr := os.WriteFile(path, content, 0o644); writeErr != nil {
		return fmt.Errorf("write output file: %w", writeErr)
	}
	return nil
}
