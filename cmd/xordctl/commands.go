package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ordkit/pkg/container/xordmap"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createEvalCommand(),
		createInteractiveCommand(),
	}
}

// createEvalCommand 创建 eval 子命令。
func createEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Aliases:   []string{"e"},
		Usage:     "依次执行操作并打印结果（无参数时从标准输入逐行读取）",
		ArgsUsage: `"<op> [args...]" ...`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sess, err := newSessionFromFlags(cmd)
			if err != nil {
				return err
			}
			return cmdEval(ctx, sess, cmd.Args().Slice())
		},
	}
}

// createInteractiveCommand 创建 interactive 子命令。
func createInteractiveCommand() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i", "repl"},
		Usage:   "交互模式（REPL）",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sess, err := newSessionFromFlags(cmd)
			if err != nil {
				return err
			}
			return cmdInteractive(ctx, sess)
		},
	}
}

// newSessionFromFlags 根据全局 flag 构建会话。
// --init 指定快照文件时以其内容为初始版本，否则从空集合开始。
func newSessionFromFlags(cmd *cli.Command) (*session, error) {
	initial := xordmap.New[string]()
	if path := cmd.String("init"); path != "" {
		loaded, err := loadSnapshot(path)
		if err != nil {
			return nil, err
		}
		initial = loaded
	}
	return newSession(initial, cmd.Int("history")), nil
}

// cmdEval 依次执行操作行。
// 每行的输出写到标准输出；任一操作失败即停止，后续操作不再执行。
func cmdEval(ctx context.Context, sess *session, lines []string) error {
	if len(lines) == 0 {
		var err error
		lines, err = readLines(ctx, os.Stdin)
		if err != nil {
			return err
		}
	}

	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		parts := parseCommandLine(line)
		if len(parts) == 0 {
			continue
		}
		out, err := sess.Eval(parts[0], parts[1:])
		if err != nil {
			return fmt.Errorf("%s: %w", parts[0], err)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return nil
}

// readLines 从 r 读取所有行。
// 设计决策: eval 的标准输入是有限脚本而非交互流，一次性读完即可；
// context 仅在行间检查，读取本身由进程信号中断。
func readLines(ctx context.Context, r *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取输入错误: %w", err)
	}
	return lines, nil
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// 当命令阻塞时，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130)       // 第二次信号: 强制退出
	}()
}
