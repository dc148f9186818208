// xipctl 是地址引擎的命令行客户端。
//
// 用法:
//
//	xipctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     命名网络配置文件 (yaml/json)
//	    --log-level  日志级别 (debug/info/warn/error, 默认: info)
//	    --log-json   以 JSON 格式输出日志
//
// 命令:
//
//	parse <literal>...   解析字面量,输出规范形式与字节表示
//	fmt [literal]...     规范化字面量(无参数时逐行读取 stdin)
//	cidr <prefix> [addr]...  解析 CIDR,可选做成员判定
//	class <literal>...   输出地址分类
//	help                 显示帮助信息
//
// 退出码:
//
//	0: 成功
//	1: 输入字面量非法
//	2: 参数错误(缺少参数、未知命令、配置加载失败等)
//
// 示例:
//
//	xipctl parse 2001:0db8::0001              # → 2001:db8::1
//	echo 010.0.0.1 | xipctl fmt               # 前导零拒绝,退出码 1
//	xipctl cidr 192.0.2.0/24 192.0.2.77       # 成员判定
//	xipctl -c networks.yaml cidr --named corp 10.1.2.3
//	xipctl class ff02::1                      # → link-local-multicast
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

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
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xipctl",
		Usage:   "IP 字面量解析、规范化与分类工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "命名网络配置文件路径 (yaml/json)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "以 JSON 格式输出日志",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		var malformedErr *malformedError
		if errors.As(err, &malformedErr) {
			fmt.Fprintf(os.Stderr, "错误: %v\n", malformedErr)
			return 1
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）同样映射到退出码 2。
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
