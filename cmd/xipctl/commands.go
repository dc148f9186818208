package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go4.org/netipx"

	"github.com/alexferl/xnet/pkg/addr/xip"
	"github.com/alexferl/xnet/pkg/addr/xnetip"
	"github.com/alexferl/xnet/pkg/config/xconf"
	"github.com/alexferl/xnet/pkg/observability/xlog"
)

// malformedError 表示输入字面量非法，映射到退出码 1。
type malformedError struct {
	err error
}

func (e *malformedError) Error() string { return e.err.Error() }
func (e *malformedError) Unwrap() error { return e.err }

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// createCommands 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createFmtCommand(),
		createCIDRCommand(),
		createClassCommand(),
	}
}

// newLogger 根据全局 flag 构建日志器。
func newLogger(cmd *cli.Command) (xlog.Logger, error) {
	b := xlog.New().SetLevelString(cmd.String("log-level"))
	if cmd.Bool("log-json") {
		b.SetFormat("json")
	}
	log, err := b.Build()
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	return log, nil
}

func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析字面量,输出规范形式与字节表示",
		ArgsUsage: "<literal>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return &usageError{msg: "parse 需要至少一个字面量参数"}
			}
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			for _, arg := range cmd.Args().Slice() {
				if err := cmdParse(ctx, os.Stdout, log, arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Aliases:   []string{"f"},
		Usage:     "规范化字面量,无参数时逐行读取 stdin",
		ArgsUsage: "[literal]...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			if cmd.Args().Len() > 0 {
				return cmdFmtArgs(ctx, os.Stdout, log, cmd.Args().Slice())
			}
			return cmdFmtStream(ctx, os.Stdout, log, os.Stdin)
		},
	}
}

func createCIDRCommand() *cli.Command {
	return &cli.Command{
		Name:      "cidr",
		Usage:     "解析 CIDR 并可选做成员判定",
		ArgsUsage: "<prefix> [addr]... | --named <name> <addr>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "named",
				Usage: "使用配置文件中的命名网络组代替 prefix 参数",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			if name := cmd.String("named"); name != "" {
				if cmd.Args().Len() == 0 {
					return &usageError{msg: "cidr --named 需要至少一个地址参数"}
				}
				set, err := loadNamedSet(ctx, log, cmd.String("config"), name)
				if err != nil {
					return err
				}
				return cmdNamedContains(os.Stdout, set, name, cmd.Args().Slice())
			}
			if cmd.Args().Len() == 0 {
				return &usageError{msg: "cidr 需要一个 CIDR 前缀参数"}
			}
			args := cmd.Args().Slice()
			return cmdCIDR(ctx, os.Stdout, log, args[0], args[1:])
		},
	}
}

func createClassCommand() *cli.Command {
	return &cli.Command{
		Name:      "class",
		Usage:     "输出地址分类",
		ArgsUsage: "<literal>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "同时输出所有为真的分类标志",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return &usageError{msg: "class 需要至少一个字面量参数"}
			}
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			for _, arg := range cmd.Args().Slice() {
				if err := cmdClass(ctx, os.Stdout, log, arg, cmd.Bool("verbose")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// =============================================================================
// 命令实现（与 CLI 框架解耦，便于测试）
// =============================================================================

func cmdParse(ctx context.Context, w io.Writer, log xlog.Logger, literal string) error {
	ip, zone := xip.ParseIPZone(literal)
	if ip == nil {
		return &malformedError{err: &xip.ParseError{Type: "IP address", Text: literal}}
	}
	log.Debug(ctx, "parsed literal",
		slog.String("input", literal),
		slog.String("canonical", ip.String()))

	line := fmt.Sprintf("%s version=%s bytes=%x", ip, xip.IPVersion(ip), []byte(ip.To16()))
	if zone != "" {
		line += " zone=" + zone
	}
	fmt.Fprintln(w, line)
	return nil
}

func cmdFmtArgs(ctx context.Context, w io.Writer, log xlog.Logger, literals []string) error {
	for _, literal := range literals {
		ip := xip.ParseIP(literal)
		if ip == nil {
			return &malformedError{err: &xip.ParseError{Type: "IP address", Text: literal}}
		}
		log.Debug(ctx, "canonicalized", slog.String("input", literal))
		fmt.Fprintln(w, ip)
	}
	return nil
}

// cmdFmtStream 逐行规范化。遇到非法行继续处理后续行，
// 最后统一以 malformedError 报告，保证批量输入拿到完整输出。
func cmdFmtStream(ctx context.Context, w io.Writer, log xlog.Logger, r io.Reader) error {
	var firstErr error
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ip := xip.ParseIP(line)
		if ip == nil {
			perr := &xip.ParseError{Type: "IP address", Text: line}
			log.Warn(ctx, "skipping malformed line", slog.String("input", line))
			if firstErr == nil {
				firstErr = &malformedError{err: perr}
			}
			continue
		}
		fmt.Fprintln(w, ip)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return firstErr
}

func cmdCIDR(ctx context.Context, w io.Writer, log xlog.Logger, prefix string, addrs []string) error {
	ip, n, err := xip.ParseCIDR(prefix)
	if err != nil {
		return &malformedError{err: err}
	}
	ones, bits := n.Mask.Size()
	log.Debug(ctx, "parsed cidr",
		slog.String("network", n.String()),
		slog.Int("prefixlen", ones))

	fmt.Fprintf(w, "host=%s network=%s mask=%s prefixlen=%d/%d\n",
		ip, n, n.Mask, ones, bits)

	for _, a := range addrs {
		addr := xip.ParseIP(a)
		if addr == nil {
			return &malformedError{err: &xip.ParseError{Type: "IP address", Text: a}}
		}
		fmt.Fprintf(w, "%s in %s = %t\n", addr, n, n.Contains(addr))
	}
	return nil
}

func cmdClass(ctx context.Context, w io.Writer, log xlog.Logger, literal string, verbose bool) error {
	ip := xip.ParseIP(literal)
	if ip == nil {
		return &malformedError{err: &xip.ParseError{Type: "IP address", Text: literal}}
	}
	c := xip.Classify(ip)
	log.Debug(ctx, "classified",
		slog.String("addr", ip.String()),
		slog.String("class", c.String()))

	if !verbose {
		fmt.Fprintf(w, "%s %s\n", ip, c)
		return nil
	}
	fmt.Fprintf(w, "%s %s flags=%s\n", ip, c, strings.Join(classFlags(c), ","))
	return nil
}

// classFlags 收集所有为真的分类标志名。
func classFlags(c xip.Classification) []string {
	var flags []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"unspecified", c.IsUnspecified},
		{"loopback", c.IsLoopback},
		{"private", c.IsPrivate},
		{"multicast", c.IsMulticast},
		{"interface-local-multicast", c.IsInterfaceLocalMulticast},
		{"link-local-multicast", c.IsLinkLocalMulticast},
		{"link-local-unicast", c.IsLinkLocalUnicast},
		{"global-unicast", c.IsGlobalUnicast},
	} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		flags = append(flags, "none")
	}
	return flags
}

// =============================================================================
// 命名网络组（来自 --config 文件）
// =============================================================================

// loadNamedSet 从配置文件加载名为 name 的网络组并合并为 IPSet。
//
// 配置格式:
//
//	networks:
//	  corp:
//	    - 10.0.0.0/8
//	    - 172.16.0.0/12
func loadNamedSet(ctx context.Context, log xlog.Logger, path, name string) (*netipx.IPSet, error) {
	if path == "" {
		return nil, &usageError{msg: "--named 需要通过 --config 指定配置文件"}
	}
	cfg, err := xconf.Load(path)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	var networks map[string][]string
	if err := cfg.Unmarshal("networks", &networks); err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	cidrs, ok := networks[name]
	if !ok || len(cidrs) == 0 {
		return nil, &usageError{msg: fmt.Sprintf("配置中没有命名网络 %q", name)}
	}
	log.Debug(ctx, "loaded named network",
		slog.String("name", name),
		slog.Int("cidrs", len(cidrs)))

	nets := make([]*xip.IPNet, 0, len(cidrs))
	for _, c := range cidrs {
		_, n, err := xip.ParseCIDR(c)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("命名网络 %q 含非法 CIDR %q", name, c)}
		}
		nets = append(nets, n)
	}
	set, err := xnetip.SetFromIPNets(nets)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	return set, nil
}

// cmdNamedContains 对每个地址做命名网络组的成员判定。
func cmdNamedContains(w io.Writer, set *netipx.IPSet, name string, addrs []string) error {
	for _, a := range addrs {
		ip := xip.ParseIP(a)
		if ip == nil {
			return &malformedError{err: &xip.ParseError{Type: "IP address", Text: a}}
		}
		addr, err := xnetip.AddrFromIP(ip)
		if err != nil {
			return &malformedError{err: err}
		}
		fmt.Fprintf(w, "%s in %s = %t\n", ip, name, set.Contains(addr))
	}
	return nil
}
