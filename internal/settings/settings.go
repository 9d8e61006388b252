// Package settings 提供按 key 读取字符串数组的配置集合。
// 配置可以来自 YAML 文件，也可以由命令行参数覆盖。
package settings

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings 保存 key 到有序字符串数组的映射。
// 构建完成后应视为只读，Set 不是并发安全的。
type Settings struct {
	values map[string][]string
}

// New 创建空配置。
func New() *Settings {
	return &Settings{values: make(map[string][]string)}
}

// Load 从 YAML 文件读取配置。
//
// 文件顶层必须是 mapping，值支持两种形式：
//
//	sonar.groovy.file.suffixes: groovy,gvy
//	sonar.groovy.file.suffixes:
//	  - groovy
//	  - gvy
//
// 标量按 "," 拆分且不 trim，空白清理交给后缀解析层处理。
func Load(path string) (*Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings from %s: %w", path, err)
	}

	s, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// Parse 解析 YAML 内容。空文档返回空配置。
func Parse(content []byte) (*Settings, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}

	s := New()
	if document.Kind == 0 || len(document.Content) == 0 {
		return s, nil
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: settings document must be a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valueNode := root.Content[i+1]

		values, err := decodeValue(valueNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		s.values[keyNode.Value] = values
	}

	return s, nil
}

func decodeValue(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
		return strings.Split(node.Value, ","), nil
	case yaml.SequenceNode:
		values := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: sequence items must be scalars", item.Line)
			}
			values = append(values, item.Value)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("line %d: value must be a string or a list of strings", node.Line)
	}
}

// Set 覆盖某个 key 的全部取值。
func (s *Settings) Set(key string, values ...string) {
	s.values[key] = append([]string(nil), values...)
}

// StringArray 返回 key 对应的取值副本，不存在时返回 nil。
func (s *Settings) StringArray(key string) []string {
	if s == nil {
		return nil
	}
	values, ok := s.values[key]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

// Keys 返回排序后的全部 key。
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
