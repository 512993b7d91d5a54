package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// cmdInteractive 交互模式（REPL）。
func cmdInteractive(ctx context.Context, exec evaluator) error {
	fmt.Println("xordctl 交互模式")
	fmt.Println("输入 'help' 查看可用操作，'quit' 或 'exit' 退出")
	fmt.Println()

	return runREPL(ctx, exec)
}

// startInputReader 启动输入读取 goroutine。
// 设计决策: inputCh 无缓冲，使用 select 保护发送，
// 防止 context 取消后 goroutine 在 inputCh 发送端永久阻塞。
func startInputReader(ctx context.Context) (<-chan string, <-chan error) {
	inputCh := make(chan string)
	errCh := make(chan error, 1) // 缓冲区为 1，避免读取 goroutine 在 context 取消后泄漏

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case errCh <- err:
			default:
			}
		}
		close(inputCh)
	}()

	return inputCh, errCh
}

// runREPL 运行 REPL 循环。
// 使用 goroutine + channel 实现可取消的输入读取，确保 Ctrl+C 能立即退出。
func runREPL(ctx context.Context, exec evaluator) error {
	inputCh, errCh := startInputReader(ctx)

	for {
		fmt.Print("ord> ")

		select {
		case <-ctx.Done():
			fmt.Println("\n再见!")
			return nil
		case err := <-errCh:
			return fmt.Errorf("读取输入错误: %w", err)
		case line, ok := <-inputCh:
			if !ok {
				// EOF，正常退出
				fmt.Println()
				return nil
			}
			line = strings.TrimSpace(line)
			if shouldExit := processLine(exec, line); shouldExit {
				return nil
			}
		}
	}
}

// processLine 处理单行输入，返回 true 表示应该退出。
func processLine(exec evaluator, line string) bool {
	if line == "" {
		return false
	}

	// 检查退出命令
	if line == "quit" || line == "exit" {
		fmt.Println("再见!")
		return true
	}

	// 解析操作和参数
	parts := parseCommandLine(line)
	if len(parts) == 0 {
		return false
	}

	evalAndPrint(exec, parts[0], parts[1:])
	return false
}

// evalAndPrint 执行操作并打印结果。
// REPL 中操作失败只打印错误，不中断会话。
func evalAndPrint(exec evaluator, op string, args []string) {
	out, err := exec.Eval(op, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return
	}

	if out != "" {
		fmt.Println(out)
	}
}

// parseCommandLine 将一行输入切分为操作与参数，支持单双引号与反斜杠转义。
// 引号使含空格的键可以作为单个参数传入。
//
// 设计决策: 仅空格作为分词符，Tab 不分词——交互式终端中 Tab 通常被
// 解释为补全。成对的空引号不产生参数。
func parseCommandLine(line string) []string {
	var (
		parts   []string
		cur     strings.Builder
		quote   rune // 0 表示不在引号内
		escaped bool
	)

	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ' ':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return parts
}
