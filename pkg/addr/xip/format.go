package xip

// String 返回 ip 的字符串形式，四种之一：
//   - "<nil>"：ip 长度为 0；
//   - 点分十进制（"192.0.2.1"）：ip 是 IPv4 或 IPv4-mapped IPv6 地址；
//   - RFC 5952 规范 IPv6（"2001:db8::1"）：ip 是合法的 16 字节地址；
//   - '?' 加无分隔符十六进制：长度无法识别时的降级形式，不报错。
func (ip IP) String() string {
	p := ip

	if len(ip) == 0 {
		return "<nil>"
	}

	// IPv4 用点分记法。
	if p4 := p.To4(); len(p4) == IPv4len {
		return uitoa(uint(p4[0])) + "." +
			uitoa(uint(p4[1])) + "." +
			uitoa(uint(p4[2])) + "." +
			uitoa(uint(p4[3]))
	}
	if len(p) != IPv6len {
		return "?" + hexString(ip)
	}

	// 找最长的零组连续段。以 2 字节为步长扫描；
	// 先出现的段只会被严格更长的后续段取代（最左最长）。
	e0 := -1
	e1 := -1
	for i := 0; i < IPv6len; i += 2 {
		j := i
		for j < IPv6len && p[j] == 0 && p[j+1] == 0 {
			j += 2
		}
		if j > i && j-i > e1-e0 {
			e0 = i
			e1 = j
			i = j
		}
	}
	// RFC 5952："::" 不得用于缩短单独一个 16 位零组。
	if e1-e0 <= 2 {
		e0 = -1
		e1 = -1
	}

	const maxLen = len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	b := make([]byte, 0, maxLen)

	// 输出各组，零段处以 "::" 替代。
	for i := 0; i < IPv6len; i += 2 {
		if i == e0 {
			b = append(b, ':', ':')
			i = e1
			if i >= IPv6len {
				break
			}
		} else if i > 0 {
			b = append(b, ':')
		}
		b = appendHex(b, (uint32(p[i])<<8)|uint32(p[i+1]))
	}
	return string(b)
}

// ipEmptyString 同 IP.String，但 ip 为空时返回 ""。
// 用于网络号/掩码等嵌入场景。
func ipEmptyString(ip IP) string {
	if len(ip) == 0 {
		return ""
	}
	return ip.String()
}

// String 返回 m 的小写十六进制形式，无分隔符。
// 空掩码返回空字符串。
func (m IPMask) String() string {
	if len(m) == 0 {
		return ""
	}
	return hexString(m)
}

// String 返回 n 的 CIDR 记法，如 "192.0.2.0/24" 或 "2001:db8::/48"
// （RFC 4632、RFC 4291）。掩码非规范（非连续 1 后接 0）时，
// 返回地址后跟 '/' 和无分隔符十六进制掩码，如 "198.51.100.0/c000ff00"。
// 网络号或掩码无法归一时返回空字符串。
func (n *IPNet) String() string {
	nn, m := networkNumberAndMask(n)
	if nn == nil || m == nil {
		return ""
	}
	l := simpleMaskLength(m)
	if l == -1 {
		return nn.String() + "/" + m.String()
	}
	return nn.String() + "/" + uitoa(uint(l))
}
