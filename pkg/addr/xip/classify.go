package xip

// 分类谓词一律优先在 4 字节视图上判断（To4 成功时），否则按 16 字节形式。
// 长度非法的输入不报错，统一按"不满足该谓词"处理，返回 false。

// IsUnspecified 报告 ip 是否为未指定地址（IPv4 "0.0.0.0" 或 IPv6 "::"）。
func (ip IP) IsUnspecified() bool {
	return ip.Equal(IPv4zero) || ip.Equal(IPv6unspecified)
}

// IsLoopback 报告 ip 是否为环回地址（IPv4 首字节 127，或 IPv6 "::1"）。
func (ip IP) IsLoopback() bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 127
	}
	return ip.Equal(IPv6loopback)
}

// IsPrivate 报告 ip 是否为私有地址：
//   - IPv4（RFC 1918）：10.0.0.0/8、172.16.0.0/12、192.168.0.0/16
//   - IPv6（RFC 4193）：fc00::/7（前 7 位为 1111110）
func (ip IP) IsPrivate() bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 10 ||
			(ip4[0] == 172 && ip4[1]&0xf0 == 16) ||
			(ip4[0] == 192 && ip4[1] == 168)
	}
	return len(ip) == IPv6len && ip[0]&0xfe == 0xfc
}

// IsMulticast 报告 ip 是否为多播地址
// （IPv4 高四位 0xE，即 224.0.0.0/4；IPv6 首字节 0xFF）。
func (ip IP) IsMulticast() bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0]&0xf0 == 0xe0
	}
	return len(ip) == IPv6len && ip[0] == 0xff
}

// IsInterfaceLocalMulticast 报告 ip 是否为接口本地多播地址。
// 仅 IPv6：首字节 0xFF 且第二字节低四位为 0x1。
func (ip IP) IsInterfaceLocalMulticast() bool {
	return len(ip) == IPv6len && ip[0] == 0xff && ip[1]&0x0f == 0x01
}

// IsLinkLocalMulticast 报告 ip 是否为链路本地多播地址
// （IPv4 224.0.0.0/24；IPv6 首字节 0xFF 且第二字节低四位 0x2）。
func (ip IP) IsLinkLocalMulticast() bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 224 && ip4[1] == 0 && ip4[2] == 0
	}
	return len(ip) == IPv6len && ip[0] == 0xff && ip[1]&0x0f == 0x02
}

// IsLinkLocalUnicast 报告 ip 是否为链路本地单播地址
// （IPv4 169.254.0.0/16；IPv6 首字节 0xFE 且第二字节高两位为 10）。
func (ip IP) IsLinkLocalUnicast() bool {
	if ip4 := ip.To4(); ip4 != nil {
		return ip4[0] == 169 && ip4[1] == 254
	}
	return len(ip) == IPv6len && ip[0] == 0xfe && ip[1]&0xc0 == 0x80
}

// IsGlobalUnicast 报告 ip 是否为全局单播地址。
// 长度为 4 或 16，且不是受限广播、未指定、环回、多播或链路本地单播地址。
// 私有地址（RFC 1918 / RFC 4193）也返回 true。
func (ip IP) IsGlobalUnicast() bool {
	return (len(ip) == IPv4len || len(ip) == IPv6len) &&
		!ip.Equal(IPv4bcast) &&
		!ip.IsUnspecified() &&
		!ip.IsLoopback() &&
		!ip.IsMulticast() &&
		!ip.IsLinkLocalUnicast()
}

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// IPVersion 返回 ip 的协议版本（V4 或 V6）。
// IPv4-mapped IPv6 地址视为 V4；长度非法返回 V0。
func IPVersion(ip IP) Version {
	if ip.To4() != nil {
		return V4
	}
	if len(ip) == IPv6len {
		return V6
	}
	return V0
}

// Classification 包含一个地址的各种分类信息。
//
// 设计决策: 使用扁平的导出字段而非位标志，值类型结构体加字段向后兼容，
// 调用方直接访问 c.IsPrivate 也更符合 Go 惯用法。
type Classification struct {
	// Version 是 IP 版本（V4 或 V6）。
	Version Version

	// IsValid 表示地址长度是否合法（4 或 16 字节）。
	IsValid bool

	// IsUnspecified 表示是否为未指定地址。
	IsUnspecified bool

	// IsLoopback 表示是否为环回地址。
	IsLoopback bool

	// IsPrivate 表示是否为私有地址。
	IsPrivate bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsInterfaceLocalMulticast 表示是否为接口本地多播地址（仅 IPv6）。
	IsInterfaceLocalMulticast bool

	// IsLinkLocalMulticast 表示是否为链路本地多播地址。
	IsLinkLocalMulticast bool

	// IsLinkLocalUnicast 表示是否为链路本地单播地址。
	IsLinkLocalUnicast bool

	// IsGlobalUnicast 表示是否为全局单播地址。
	IsGlobalUnicast bool
}

// Classify 一次性返回 ip 的全部分类信息。
// 分类标志不互斥：私有地址同时也是全局单播地址。
// 长度非法的地址返回零值 Classification。
func Classify(ip IP) Classification {
	if len(ip) != IPv4len && len(ip) != IPv6len {
		return Classification{}
	}
	return Classification{
		Version:                   IPVersion(ip),
		IsValid:                   true,
		IsUnspecified:             ip.IsUnspecified(),
		IsLoopback:                ip.IsLoopback(),
		IsPrivate:                 ip.IsPrivate(),
		IsMulticast:               ip.IsMulticast(),
		IsInterfaceLocalMulticast: ip.IsInterfaceLocalMulticast(),
		IsLinkLocalMulticast:      ip.IsLinkLocalMulticast(),
		IsLinkLocalUnicast:        ip.IsLinkLocalUnicast(),
		IsGlobalUnicast:           ip.IsGlobalUnicast(),
	}
}

// String 返回分类信息的标签。越特殊的分类优先级越高。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}
	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLoopback, "loopback"},
		{c.IsUnspecified, "unspecified"},
		{c.IsPrivate, "private"},
		{c.IsLinkLocalUnicast, "link-local-unicast"},
		{c.IsLinkLocalMulticast, "link-local-multicast"},
		{c.IsInterfaceLocalMulticast, "interface-local-multicast"},
		{c.IsMulticast, "multicast"},
		{c.IsGlobalUnicast, "global-unicast"},
	}
	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	// 受限广播 255.255.255.255 不属于上述任何一类。
	return "other"
}
