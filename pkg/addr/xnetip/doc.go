// Package xnetip 提供 [xip] 切片模型与 net/netip 值类型生态之间的桥接。
//
// xip 的 IP/IPNet 适合需要自持二进制表示的编解码场景；
// netip.Addr/netip.Prefix 以及 go4.org/netipx 的 IPRange/IPSet
// 适合做零分配比较、map 键和高效的范围集合查询。
// xnetip 负责两个世界的互转，并提供可序列化的 Wire 结构。
//
// # 互转
//
//	addr, _ := xnetip.AddrFromIP(xip.ParseIP("192.0.2.1"))   // netip.Addr
//	ip, _ := xnetip.IPFromAddr(netip.MustParseAddr("::1"))   // xip.IP
//	_, n, _ := xip.ParseCIDR("192.0.2.0/24")
//	set, _ := xnetip.SetFromIPNets([]*xip.IPNet{n})          // *netipx.IPSet
//
// IPv4-mapped IPv6 地址在转换时统一 Unmap 为纯 IPv4，
// 与 xip 的格式化语义（mapped 地址按点分十进制输出）保持一致。
//
// # Zone 处理
//
// netipx 的 IPRange/IPSet 会静默丢弃 zone 信息，导致集合查询误判，
// 因此 [IPFromAddr] 拒绝带 zone 的地址，返回 [ErrZonedAddress]。
// zone 要走序列化时使用 [WireAddr]，它以独立字段显式携带 zone。
//
// # 序列化
//
// [WireAddr] 和 [WireNet] 携带 json/bson/yaml 标签，
// 反序列化后经 ToIP/ToIPNet 校验并还原为引擎类型。
package xnetip
