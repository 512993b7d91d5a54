// xordctl 是 xordmap 有序集合的命令行工作台。
//
// 用法:
//
//	xordctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-i, --init     启动时加载的快照文件 (YAML/JSON)
//	-H, --history  保留的历史版本数 (默认: 64)
//
// 命令:
//
//	eval ["op..." ...]   依次执行操作；无参数时从标准输入逐行读取
//	interactive          交互模式（REPL）
//	help                 显示帮助信息
//
// 操作集与 xordmap 的 API 一一对应：add 是"插入或迁移到尾部"的 touch
// 语义，addnew/remove 是静默变体，addnew!/remove! 是报错变体。
// 容器本身不可变，每次修改产生新版本，undo 可逐级回退（深度受 --history
// 限制）。
//
// 退出码:
//
//	0: 全部操作执行成功
//	1: 操作执行失败（如 addnew! 遇到重复键、快照文件不可读）
//	2: 参数错误（未知操作、参数个数不对、未知 flag 等）
//
// 示例:
//
//	xordctl eval "add a" "add b" "add a" "list"     # 输出 b a
//	echo -e "add a\nadd b\nremove a\nlist" | xordctl eval
//	xordctl -i state.yaml interactive               # 从快照继续
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// defaultHistoryDepth 默认保留的历史版本数。
const defaultHistoryDepth = 64

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xordctl",
		Usage:   "xordmap 有序集合命令行工作台",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "init",
				Aliases: []string{"i"},
				Usage:   "启动时加载的快照文件 (YAML/JSON)",
			},
			&cli.IntFlag{
				Name:    "history",
				Aliases: []string{"H"},
				Usage:   "保留的历史版本数",
				Value:   defaultHistoryDepth,
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ordkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `xordctl 在一个不可变的插入有序集合上执行操作，
用于演示与脚本化 xordmap 的语义。

可用操作（eval 与 interactive 通用）:
  add / addnew / addnew! / remove / remove!
  get / has / list / len / head / tail / next / prev
  undo / history / reset / save / help`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// isCLIUsageError 判断错误是否来自 CLI 框架的参数解析。
func isCLIUsageError(err error) bool {
	_, ok := err.(cli.ExitCoder)
	return ok
}
