package xnetip

import (
	"fmt"

	"github.com/alexferl/xnet/pkg/addr/xip"
)

// WireAddr 是单个地址的传输形态,适用于 json/bson/yaml 编解码。
//
// Addr 存放不含 zone 的规范字面量,Zone 单独成字段,
// 避免 "%" 在各序列化格式里的转义歧义。
// 零值表示"无地址",序列化为 {"addr":""}。
//
// 设计决策: 传输层存字符串而非原始字节。字符串对人类可读、
// 跨语言无歧义,且反序列化必然经过 ToIP 的完整校验,
// 不会出现长度非法的字节序列混入引擎类型。
type WireAddr struct {
	Addr string `json:"addr" bson:"addr" yaml:"addr"`
	Zone string `json:"zone,omitempty" bson:"zone,omitempty" yaml:"zone,omitempty"`
}

// WireAddrFrom 由引擎类型构造 WireAddr,字面量按规范形式输出。
// ip 长度非法时返回 [ErrInvalidAddress]。
func WireAddrFrom(ip xip.IP, zone string) (WireAddr, error) {
	if l := len(ip); l != xip.IPv4len && l != xip.IPv6len {
		return WireAddr{}, fmt.Errorf("%w: bad length %d", ErrInvalidAddress, l)
	}
	return WireAddr{Addr: ip.String(), Zone: zone}, nil
}

// ToIP 解析并校验传输形态,还原为引擎类型与 zone。
// 字面量非法时返回 [ErrInvalidAddress]。
func (w WireAddr) ToIP() (xip.IP, string, error) {
	ip := xip.ParseIP(w.Addr)
	if ip == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidAddress, w.Addr)
	}
	return ip, w.Zone, nil
}

// IsZero 报告 w 是否为零值(未携带地址)。
func (w WireAddr) IsZero() bool {
	return w.Addr == "" && w.Zone == ""
}

// String 返回 host 或 host%zone 形式。
func (w WireAddr) String() string {
	if w.Zone == "" {
		return w.Addr
	}
	return w.Addr + "%" + w.Zone
}

// WireNet 是 CIDR 网络的传输形态,Net 存放规范 CIDR 字面量。
// 零值表示"无网络"。
type WireNet struct {
	Net string `json:"net" bson:"net" yaml:"net"`
}

// WireNetFrom 由引擎类型构造 WireNet。
// n 的掩码非规范或地址族不匹配时返回 [ErrInvalidNetwork]。
func WireNetFrom(n *xip.IPNet) (WireNet, error) {
	if _, err := PrefixFromIPNet(n); err != nil {
		return WireNet{}, err
	}
	return WireNet{Net: n.String()}, nil
}

// ToIPNet 解析传输形态,返回掩码归零后的网络。
// 字面量非法时返回 [ErrInvalidNetwork]。
func (w WireNet) ToIPNet() (*xip.IPNet, error) {
	_, n, err := xip.ParseCIDR(w.Net)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNetwork, w.Net)
	}
	return n, nil
}

// IsZero 报告 w 是否为零值。
func (w WireNet) IsZero() bool {
	return w.Net == ""
}

// String 返回 CIDR 字面量。
func (w WireNet) String() string {
	return w.Net
}
