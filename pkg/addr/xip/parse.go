package xip

// parseIPv4 解析 IPv4 点分十进制字面量（d.d.d.d）。
// 恰好 4 个以 '.' 分隔的十进制段，每段 ≤ 255 且必须吞掉整段数字串；
// 多位段不得以 '0' 开头（拒绝 "01" 这类前导零写法）。
// '-' 不是十进制数字，负数段自然失败。第 4 段之后不得有剩余字符。
// 成功时返回 16 字节的 [IPv4] 结果，失败返回 nil。
func parseIPv4(s string) IP {
	var p [IPv4len]byte
	for i := 0; i < IPv4len; i++ {
		if len(s) == 0 {
			// 缺少段。
			return nil
		}
		if i > 0 {
			if s[0] != '.' {
				return nil
			}
			s = s[1:]
		}
		n, c, ok := dtoi(s)
		if !ok || n > 0xFF {
			return nil
		}
		if c > 1 && s[0] == '0' {
			// 拒绝前导零。
			return nil
		}
		s = s[c:]
		p[i] = byte(n)
	}
	if len(s) != 0 {
		return nil
	}
	return IPv4(p[0], p[1], p[2], p[3])
}

// parseIPv6Zone 解析可能带有 RFC 4007 zone 标识的 IPv6 字面量。
// 先按最后一个 '%' 拆出 zone，再将主机部分按纯 IPv6 解析。
// zone 作为不透明文本携带，不做任何校验或接口解析。
func parseIPv6Zone(s string) (IP, string) {
	s, zone := splitHostZone(s)
	return parseIPv6(s), zone
}

// parseIPv6 解析 RFC 4291 / RFC 5952 描述的 IPv6 字面量。
//
// 从左到右单趟扫描 8 个 16 位组（16 字节）：
//   - 至多一个 "::" 省略标记（按字节偏移记录），第二次出现即失败；
//   - 结尾可嵌入 IPv4 点分组，仅当它紧跟省略标记之后、
//     或在无省略时恰好填充最后 4 字节（i == 12）时合法；
//   - 每个十六进制组必须满足 xtoi 且 ≤ 0xFFFF，除末组外必须后跟 ':'。
//
// 扫描结束后：写入不足 16 字节且记录了省略，则将已写内容自省略点右移到
// 末尾并以零填充空隙；无省略而不足 16 字节是错误；记录了省略但 16 字节
// 已被字面组写满也是错误（省略必须代表至少一个零组）。
func parseIPv6(s string) (ip IP) {
	ip = make(IP, IPv6len)
	ellipsis := -1 // "::" 在 ip 中的字节偏移

	// 可能以 "::" 开头。
	if len(s) >= 2 && s[0] == ':' && s[1] == ':' {
		ellipsis = 0
		s = s[2:]
		// 可能只有 "::"。
		if len(s) == 0 {
			return ip
		}
	}

	// 循环解析后跟冒号的十六进制组。
	i := 0
	for i < IPv6len {
		n, c, ok := xtoi(s)
		if !ok || n > 0xFFFF {
			return nil
		}

		// 后随 '.' 说明可能是结尾嵌入的 IPv4。
		if c < len(s) && s[c] == '.' {
			if ellipsis < 0 && i != IPv6len-IPv4len {
				// 位置不对。
				return nil
			}
			if i+IPv4len > IPv6len {
				// 空间不足。
				return nil
			}
			ip4 := parseIPv4(s)
			if ip4 == nil {
				return nil
			}
			ip[i] = ip4[12]
			ip[i+1] = ip4[13]
			ip[i+2] = ip4[14]
			ip[i+3] = ip4[15]
			s = ""
			i += IPv4len
			break
		}

		// 保存这个 16 位组。
		ip[i] = byte(n >> 8)
		ip[i+1] = byte(n)
		i += 2

		// 字符串耗尽则结束。
		s = s[c:]
		if len(s) == 0 {
			break
		}

		// 否则必须后跟 ':' 且后面还有内容。
		if s[0] != ':' || len(s) == 1 {
			return nil
		}
		s = s[1:]

		// 检查省略标记。
		if s[0] == ':' {
			if ellipsis >= 0 {
				// 已经有一个。
				return nil
			}
			ellipsis = i
			s = s[1:]
			if len(s) == 0 {
				// 可以在末尾。
				break
			}
		}
	}

	// 必须消耗整个字符串。
	if len(s) != 0 {
		return nil
	}

	// 组数不足时展开省略部分。
	if i < IPv6len {
		if ellipsis < 0 {
			return nil
		}
		n := IPv6len - i
		for j := i - 1; j >= ellipsis; j-- {
			ip[j+n] = ip[j]
		}
		for j := ellipsis + n - 1; j >= ellipsis; j-- {
			ip[j] = 0
		}
	} else if ellipsis >= 0 {
		// 省略必须代表至少一个零组。
		return nil
	}
	return ip
}

// splitHostZone 按最后一个 '%' 将 s 拆为主机部分和 zone 标识。
// '%' 不存在或位于开头时整个字符串都是主机部分。
func splitHostZone(s string) (host, zone string) {
	if i := last(s, '%'); i > 0 {
		host, zone = s[:i], s[i+1:]
	} else {
		host = s
	}
	return
}

// ParseIP 将 s 解析为 IP 地址。
// s 可以是 IPv4 点分十进制（"192.0.2.1"）、IPv6（"2001:db8::68"）
// 或 IPv4-mapped IPv6（"::ffff:192.0.2.1"）形式。
// s 不是合法的地址文本时返回 nil；带 zone 的输入在此入口一律失败。
//
// 按首个 '.' 或 ':' 分派：'.' 走 IPv4，':' 走 IPv6；
// 两者都不含的字符串（如 "abc"）不再继续扫描，直接拒绝。
func ParseIP(s string) IP {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			return parseIPv4(s)
		case ':':
			return parseIPv6(s)
		}
	}
	return nil
}

// ParseIPZone 将 s 解析为 IP 地址及可选的 IPv6 zone 标识。
// zone 仅对 IPv6 有意义，原样透传；IPv4 分支的 zone 恒为空。
func ParseIPZone(s string) (IP, string) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			return parseIPv4(s), ""
		case ':':
			return parseIPv6Zone(s)
		}
	}
	return nil, ""
}

// ParseCIDR 将 s 解析为 CIDR 记法的 IP 地址和前缀长度，
// 如 "192.0.2.0/24" 或 "2001:db8::/32"（RFC 4632、RFC 4291）。
//
// 返回地址本身以及该地址和前缀长度蕴含的网络：
// ParseCIDR("192.0.2.1/24") 返回地址 192.0.2.1 和网络 192.0.2.0/24。
// 网络号是解析出的地址经掩码作用后的结果，不是原始地址。
//
// 按第一个 '/' 拆分；地址侧先按 IPv4、失败再按 IPv6 解析（由此确定
// 前缀长度上界 32 或 128）；前缀侧必须是完整消耗的十进制且在界内。
// 任何失败路径都返回携带完整原始字符串的 *ParseError。
func ParseCIDR(s string) (IP, *IPNet, error) {
	i := byteIndex(s, '/')
	if i < 0 {
		return nil, nil, &ParseError{Type: "CIDR address", Text: s}
	}
	addr, mask := s[:i], s[i+1:]
	iplen := IPv4len
	ip := parseIPv4(addr)
	if ip == nil {
		iplen = IPv6len
		ip = parseIPv6(addr)
	}
	n, i, ok := dtoi(mask)
	if ip == nil || !ok || i != len(mask) || n < 0 || n > 8*iplen {
		return nil, nil, &ParseError{Type: "CIDR address", Text: s}
	}
	m := CIDRMask(n, 8*iplen)
	return ip, &IPNet{IP: ip.Mask(m), Mask: m}, nil
}

// byteIndex 返回 b 在 s 中首次出现的下标，不存在时返回 -1。
func byteIndex(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
