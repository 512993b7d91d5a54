package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/ordkit/pkg/container/xordmap"
)

// evaluator 执行单条操作并返回可打印的结果。
// eval 与 interactive 两种入口共用同一实现（session）。
type evaluator interface {
	Eval(op string, args []string) (string, error)
}

// usageError 表示操作本身的用法错误（未知操作、参数个数不对等）。
// main 将其映射为退出码 2，与容器操作失败（退出码 1）区分。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// session 维护一个有序集合的版本历史。
//
// 设计决策: xordmap.Map 是不可变值，每次修改产生新版本且旧版本永远有效，
// 因此 undo 只需保留历史版本切片并回退下标，无需任何快照或反向操作。
// 历史深度由 maxDepth 限制，超出后丢弃最旧版本。
type session struct {
	versions []xordmap.Map[string]
	maxDepth int
}

// newSession 创建会话，initial 为初始版本。
// maxDepth 小于 2 时强制为 2（至少保留当前版本和一个可回退版本）。
func newSession(initial xordmap.Map[string], maxDepth int) *session {
	if maxDepth < 2 {
		maxDepth = 2
	}
	return &session{
		versions: []xordmap.Map[string]{initial},
		maxDepth: maxDepth,
	}
}

// current 返回当前版本。
func (s *session) current() xordmap.Map[string] {
	return s.versions[len(s.versions)-1]
}

// push 提交新版本，超出历史深度时丢弃最旧版本。
func (s *session) push(m xordmap.Map[string]) {
	s.versions = append(s.versions, m)
	if len(s.versions) > s.maxDepth {
		s.versions = s.versions[1:]
	}
}

// render 返回顺序的人类可读表示。
func render(m xordmap.Map[string]) string {
	if m.Len() == 0 {
		return "(empty)"
	}
	return strings.Join(m.Keys(), " ")
}

// Eval 执行单条操作。
// 修改类操作（add/addnew/addnew!/remove/remove!/reset/undo）返回执行后的顺序；
// 查询类操作返回查询结果。操作失败时返回错误且当前版本保持不变。
func (s *session) Eval(op string, args []string) (string, error) {
	switch op {
	case "add":
		return s.evalMutate(args, func(m xordmap.Map[string], k string) (xordmap.Map[string], error) {
			return m.Add(k), nil
		})
	case "addnew":
		return s.evalMutate(args, func(m xordmap.Map[string], k string) (xordmap.Map[string], error) {
			return m.AddNew(k), nil
		})
	case "addnew!":
		return s.evalMutate(args, func(m xordmap.Map[string], k string) (xordmap.Map[string], error) {
			return m.AddNewChecked(k)
		})
	case "remove":
		return s.evalMutate(args, func(m xordmap.Map[string], k string) (xordmap.Map[string], error) {
			return m.Remove(k), nil
		})
	case "remove!":
		return s.evalMutate(args, func(m xordmap.Map[string], k string) (xordmap.Map[string], error) {
			return m.RemoveChecked(k)
		})
	case "get":
		if len(args) < 1 || len(args) > 2 {
			return "", usageErrorf("用法: get <key> [default]")
		}
		def := ""
		if len(args) == 2 {
			def = args[1]
		}
		return s.current().Get(args[0], def), nil
	case "has":
		if len(args) != 1 {
			return "", usageErrorf("用法: has <key>")
		}
		return strconv.FormatBool(s.current().Contains(args[0])), nil
	case "list":
		if len(args) != 0 {
			return "", usageErrorf("list 不接受参数")
		}
		return render(s.current()), nil
	case "len":
		if len(args) != 0 {
			return "", usageErrorf("len 不接受参数")
		}
		return strconv.Itoa(s.current().Len()), nil
	case "head":
		return s.evalBoundary(args, s.current().Head)
	case "tail":
		return s.evalBoundary(args, s.current().Tail)
	case "next":
		if len(args) != 1 {
			return "", usageErrorf("用法: next <key>")
		}
		return formatOptional(s.current().Next(args[0])), nil
	case "prev":
		if len(args) != 1 {
			return "", usageErrorf("用法: prev <key>")
		}
		return formatOptional(s.current().Prev(args[0])), nil
	case "undo":
		if len(args) != 0 {
			return "", usageErrorf("undo 不接受参数")
		}
		if len(s.versions) < 2 {
			return "", fmt.Errorf("没有可回退的版本")
		}
		s.versions = s.versions[:len(s.versions)-1]
		return render(s.current()), nil
	case "history":
		if len(args) != 0 {
			return "", usageErrorf("history 不接受参数")
		}
		var b strings.Builder
		for i, v := range s.versions {
			fmt.Fprintf(&b, "%d: %s", i, render(v))
			if i != len(s.versions)-1 {
				b.WriteByte('\n')
			}
		}
		return b.String(), nil
	case "reset":
		if len(args) != 0 {
			return "", usageErrorf("reset 不接受参数")
		}
		s.push(xordmap.New[string]())
		return render(s.current()), nil
	case "save":
		if len(args) != 1 {
			return "", usageErrorf("用法: save <file>")
		}
		if err := saveSnapshot(args[0], s.current()); err != nil {
			return "", err
		}
		return fmt.Sprintf("已保存 %d 个元素到 %s", s.current().Len(), args[0]), nil
	case "help":
		return helpText, nil
	default:
		return "", usageErrorf("未知操作 %q（输入 help 查看可用操作）", op)
	}
}

// evalMutate 执行接收单个键的修改类操作，成功时提交新版本。
// 支持一次传入多个键，逐个应用；任一键失败则整条操作回滚（不提交）。
func (s *session) evalMutate(args []string, apply func(xordmap.Map[string], string) (xordmap.Map[string], error)) (string, error) {
	if len(args) == 0 {
		return "", usageErrorf("缺少键参数")
	}
	m := s.current()
	for _, k := range args {
		var err error
		m, err = apply(m, k)
		if err != nil {
			return "", err
		}
	}
	s.push(m)
	return render(m), nil
}

// evalBoundary 执行 head/tail 查询。
func (s *session) evalBoundary(args []string, get func() (string, bool)) (string, error) {
	if len(args) != 0 {
		return "", usageErrorf("该操作不接受参数")
	}
	k, ok := get()
	if !ok {
		return "(none)", nil
	}
	return k, nil
}

// formatOptional 渲染可能缺失的查询结果。
func formatOptional(k string, ok bool) string {
	if !ok {
		return "(none)"
	}
	return k
}

// helpText REPL 帮助文本。
const helpText = `可用操作:
  add <key...>      插入到尾部；已存在则迁移到尾部（touch）
  addnew <key...>   仅当键不存在时插入；重复键无操作
  addnew! <key...>  同 addnew，但重复键报错
  remove <key...>   删除键；不存在时无操作
  remove! <key...>  同 remove，但键不存在时报错
  get <key> [def]   查询键，未命中返回 def（默认空串）
  has <key>         成员测试
  list              按插入顺序列出全部键
  len               条目数
  head / tail       顺序中的第一个/最后一个键
  next <key>        键的后继
  prev <key>        键的前驱
  undo              回退到上一个版本
  history           列出保留的历史版本
  reset             清空为新的空集合
  save <file>       保存当前元素到快照文件（YAML）
  help              显示本帮助
  quit / exit       退出（仅交互模式）`
