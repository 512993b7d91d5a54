package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/omeyang/ordkit/pkg/container/xordmap"
)

// snapshot 快照文件结构。元素顺序即插入顺序。
type snapshot struct {
	Elements []string `koanf:"elements" yaml:"elements"`
}

// loadSnapshot 从 YAML/JSON 快照文件构建有序集合。
// 格式按扩展名检测（.yaml/.yml/.json）。
// 重复元素按 Add 的 touch 语义处理：最后一次出现决定最终位置。
func loadSnapshot(path string) (xordmap.Map[string], error) {
	parser, err := detectParser(path)
	if err != nil {
		return xordmap.New[string](), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return xordmap.New[string](), fmt.Errorf("读取快照失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return xordmap.New[string](), fmt.Errorf("解析快照失败: %w", err)
	}

	var snap snapshot
	if err := k.Unmarshal("", &snap); err != nil {
		return xordmap.New[string](), fmt.Errorf("反序列化快照失败: %w", err)
	}

	m := xordmap.New[string]()
	for _, e := range snap.Elements {
		m = m.Add(e)
	}
	return m, nil
}

// saveSnapshot 将当前元素按顺序写入 YAML 快照文件。
func saveSnapshot(path string, m xordmap.Map[string]) error {
	data, err := yaml.Marshal(snapshot{Elements: m.Keys()})
	if err != nil {
		return fmt.Errorf("序列化快照失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("写入快照失败: %w", err)
	}
	return nil
}

// detectParser 根据文件扩展名选择解析器。
func detectParser(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("不支持的快照格式: %s（支持 .yaml/.yml/.json）", filepath.Ext(path))
	}
}
