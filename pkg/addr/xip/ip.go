package xip

import "bytes"

// IP 地址长度（字节）。
const (
	IPv4len = 4
	IPv6len = 16
)

// IP 是单个 IP 地址，一个字节切片。
// 本包的函数接受 4 字节（IPv4）或 16 字节（IPv6）切片作为输入；
// 长度为 0 表示"无地址"（nil 哨兵），其他长度一律视为无效。
//
// 注意：地址是 IPv4 还是 IPv6 是内容层面的语义属性，不仅仅由切片长度决定：
// 一个 16 字节切片仍然可以是（IPv4-mapped 形式的）IPv4 地址。
type IP []byte

// IPMask 是用于 IP 寻址和路由的位掩码，表示同 [IP]。
// 规范形式为前缀连续 1、后缀连续 0（"简单"掩码）；
// 非规范掩码合法，但只能以十六进制文本表示，不能以前缀长度表示。
type IPMask []byte

// IPNet 表示一个 IP 网络。
type IPNet struct {
	IP   IP     // 网络号
	Mask IPMask // 网络掩码
}

// v4InV6Prefix 是 IPv4-mapped IPv6 地址的固定 12 字节前缀。
var v4InV6Prefix = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// IPv4 返回 IPv4 地址 a.b.c.d 的 16 字节形式。
// 所有 IPv4 地址在内部统一为 16 字节表示，4 字节形式只作为 [IP.To4] 返回的视图出现。
func IPv4(a, b, c, d byte) IP {
	p := make(IP, IPv6len)
	copy(p, v4InV6Prefix)
	p[12] = a
	p[13] = b
	p[14] = c
	p[15] = d
	return p
}

// IPv4Mask 返回 IPv4 掩码 a.b.c.d 的 4 字节形式。
func IPv4Mask(a, b, c, d byte) IPMask {
	p := make(IPMask, IPv4len)
	p[0] = a
	p[1] = b
	p[2] = c
	p[3] = d
	return p
}

// 周知 IPv4 地址。
var (
	IPv4bcast     = IPv4(255, 255, 255, 255) // 受限广播
	IPv4allsys    = IPv4(224, 0, 0, 1)       // 所有主机
	IPv4allrouter = IPv4(224, 0, 0, 2)       // 所有路由器
	IPv4zero      = IPv4(0, 0, 0, 0)         // 全零
)

// 周知 IPv6 地址。
var (
	IPv6zero                   = IP{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	IPv6unspecified            = IP{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	IPv6loopback               = IP{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	IPv6interfacelocalallnodes = IP{0xff, 0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x01}
	IPv6linklocalallnodes      = IP{0xff, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x01}
	IPv6linklocalallrouters    = IP{0xff, 0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x02}
)

// isZeros 报告 p 是否全为零字节。
func isZeros(p IP) bool {
	for i := 0; i < len(p); i++ {
		if p[i] != 0 {
			return false
		}
	}
	return true
}

// allFF 报告 b 是否全为 0xFF 字节。
func allFF(b []byte) bool {
	for _, c := range b {
		if c != 0xff {
			return false
		}
	}
	return true
}

// To4 将 IPv4 地址 ip 转为 4 字节表示。
// 若 ip 不是 IPv4 地址，返回 nil。
// 返回值是 ip 的非持有视图（子切片），不产生新分配。
func (ip IP) To4() IP {
	if len(ip) == IPv4len {
		return ip
	}
	if len(ip) == IPv6len &&
		isZeros(ip[0:10]) &&
		ip[10] == 0xff &&
		ip[11] == 0xff {
		return ip[12:16]
	}
	return nil
}

// To16 将 ip 转为 16 字节表示。
// 若 ip 不是 IP 地址（长度非法），返回 nil。
func (ip IP) To16() IP {
	if len(ip) == IPv4len {
		return IPv4(ip[0], ip[1], ip[2], ip[3])
	}
	if len(ip) == IPv6len {
		return ip
	}
	return nil
}

// Equal 报告 ip 和 x 是否为同一地址。
// IPv4 地址与其 IPv4-mapped IPv6 形式视为相等。
// 两个 nil IP 相等（同长度分支按零长字节序列比较成功）。
func (ip IP) Equal(x IP) bool {
	if len(ip) == len(x) {
		return bytes.Equal(ip, x)
	}
	if len(ip) == IPv4len && len(x) == IPv6len {
		return bytes.Equal(x[0:12], v4InV6Prefix) && bytes.Equal(ip, x[12:])
	}
	if len(ip) == IPv6len && len(x) == IPv4len {
		return bytes.Equal(ip[0:12], v4InV6Prefix) && bytes.Equal(ip[12:], x)
	}
	return false
}

// Mask 返回 ip 与 mask 按位与的结果。
// 16 字节掩码前 12 字节全 0xFF 时可作用于 4 字节地址（掩码收窄为后 4 字节）；
// 对称地，4 字节掩码可作用于 IPv4-mapped 的 16 字节地址（地址收窄为后 4 字节）。
// 收窄后长度仍不一致时返回 nil。
// 结果是新分配的缓冲区，绝不写回 ip 或 mask。
func (ip IP) Mask(mask IPMask) IP {
	if len(mask) == IPv6len && len(ip) == IPv4len && allFF(mask[:12]) {
		mask = mask[12:]
	}
	if len(mask) == IPv4len && len(ip) == IPv6len && bytes.Equal(ip[:12], v4InV6Prefix) {
		ip = ip[12:]
	}
	n := len(ip)
	if n != len(mask) {
		return nil
	}
	out := make(IP, n)
	for i := 0; i < n; i++ {
		out[i] = ip[i] & mask[i]
	}
	return out
}

// IPv4 传统分类掩码。
var (
	classAMask = IPv4Mask(0xff, 0, 0, 0)
	classBMask = IPv4Mask(0xff, 0xff, 0, 0)
	classCMask = IPv4Mask(0xff, 0xff, 0xff, 0)
)

// DefaultMask 返回 ip 的传统分类（A/B/C 类）默认掩码。
// 只有 IPv4 地址有默认掩码；ip 不是合法 IPv4 地址时返回 nil。
func (ip IP) DefaultMask() IPMask {
	if ip = ip.To4(); ip == nil {
		return nil
	}
	switch {
	case ip[0] < 0x80:
		return classAMask
	case ip[0] < 0xC0:
		return classBMask
	default:
		return classCMask
	}
}

// MarshalText 实现 [encoding.TextMarshaler] 接口。
// 编码与 String 一致，唯一例外：ip 长度为 0 时返回空切片。
func (ip IP) MarshalText() ([]byte, error) {
	if len(ip) == 0 {
		return []byte(""), nil
	}
	if len(ip) != IPv4len && len(ip) != IPv6len {
		return nil, &AddrError{Err: "invalid IP address", Addr: hexString(ip)}
	}
	return []byte(ip.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler] 接口。
// 地址应为 [ParseIP] 可接受的形式。
func (ip *IP) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*ip = nil
		return nil
	}
	s := string(text)
	x := ParseIP(s)
	if x == nil {
		return &ParseError{Type: "IP address", Text: s}
	}
	*ip = x
	return nil
}

// Network 返回地址的网络名："ip+net"。
func (n *IPNet) Network() string { return "ip+net" }
