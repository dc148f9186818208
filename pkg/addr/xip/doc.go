// Package xip 实现 IP 地址字面量的模型与编解码。
//
// xip 不依赖操作系统解析器，自带一套完整的、RFC 语义精确的地址引擎：
// 将 IPv4/IPv6 文本（含 zone 标识与 CIDR 记法）解析为规范的二进制形式，
// 将二进制形式格式化回符合 RFC 的文本，并回答地址的结构/分类问题
// （环回、私有、多播、作用域、网络归属）。
//
// # 数据模型
//
//   - [IP]: 字节切片，长度 4（IPv4）、16（IPv6）或 0（无地址）。
//     v4/v6 是内容语义而非长度语义：前 12 字节为 00×10,FF,FF 的
//     16 字节地址是 IPv4-mapped 地址，可经 [IP.To4] 还原为 4 字节视图。
//   - [IPMask]: 表示同 IP 的位掩码。规范形式为连续 1 后接连续 0。
//   - [IPNet]: (IP, IPMask) 不可变对，表示一个网络。
//
// 三者均为构造后只读的值类型；所有操作都是纯函数，无共享可变状态，
// 可在多 goroutine 间无锁并发调用。掩码/格式化产生的缓冲区每次新分配，
// 归调用方独占；唯一的例外是文档明确的收窄视图（子切片，绝不回写原缓冲）。
//
// # 解析
//
//	ip := xip.ParseIP("2001:db8::1")
//	ip, zone := xip.ParseIPZone("fe80::1%eth0")   // zone 原样携带，不做解析
//	ip, n, err := xip.ParseCIDR("192.0.2.1/24")   // n = 192.0.2.0/24
//
// 解析器是单趟状态机：精确的拒绝规则（前导零、越界、分隔符错位）、
// 至多一个 "::" 省略、结尾可嵌入 IPv4 点分组。失败以零值/*ParseError*
// 返回，绝不 panic；[ParseError] 经 Unwrap 链接 [ErrMalformedLiteral]，
// 支持 errors.Is 统一分流。
//
// # 格式化
//
// [IP.String] 输出 RFC 5952 规范形式（最左最长零组段折叠为 "::"，
// 单独零组不折叠）；无法识别的长度降级为 "?"+hex，格式化永不失败。
// [IPNet.String] 对规范掩码输出前缀长度，否则输出十六进制掩码。
//
// # 分类
//
// [IP.IsLoopback] 等谓词按 RFC 的逐位规则实现；[Classify] 一次返回
// 全部标志位，[Classification.String] 按特殊性优先级给出单一标签。
//
// # 与 net/netip 的关系
//
// xip 的切片模型与标准库 net.IP 同构，适合需要自持字节表示的场景；
// 与值类型生态的互转见 [github.com/alexferl/xnet/pkg/addr/xnetip]。
package xip
