package xip

// CIDRMask 返回由 ones 个 1 位后跟 0 位、总长 bits 位的掩码。
// bits 必须恰为 32 或 128，ones 必须在 [0, bits] 内，否则返回 nil。
// 对这种形式的掩码，CIDRMask 是 [IPMask.Size] 的左逆。
func CIDRMask(ones, bits int) IPMask {
	if bits != 8*IPv4len && bits != 8*IPv6len {
		return nil
	}
	if ones < 0 || ones > bits {
		return nil
	}
	l := bits / 8
	m := make(IPMask, l)
	n := uint(ones)
	for i := 0; i < l; i++ {
		if n >= 8 {
			m[i] = 0xff
			n -= 8
			continue
		}
		m[i] = ^byte(0xff >> n)
		n = 0
	}
	return m
}

// simpleMaskLength 在 mask 为连续 1 后接连续 0 的规范形式时返回 1 的个数，
// 否则返回 -1。前导 0xFF 字节各记 8 位；遇到第一个非 0xFF 字节时统计其
// 前导 1 位，并要求该字节剩余位及其后所有字节全为零。
func simpleMaskLength(mask IPMask) int {
	var n int
	for i, v := range mask {
		if v == 0xff {
			n += 8
			continue
		}
		// 统计前导 1 位。
		for v&0x80 != 0 {
			n++
			v <<= 1
		}
		// 其余必须是 0 位。
		if v != 0 {
			return -1
		}
		for i++; i < len(mask); i++ {
			if mask[i] != 0 {
				return -1
			}
		}
		break
	}
	return n
}

// Size 返回掩码的前导 1 位数和总位数。
// 掩码不是规范形式（1 后接 0）时返回 0, 0。
func (m IPMask) Size() (ones, bits int) {
	ones, bits = simpleMaskLength(m), len(m)*8
	if ones == -1 {
		return 0, 0
	}
	return
}

// networkNumberAndMask 将 n 归一为家族一致的 (网络号, 掩码)。
// 先对存储的地址尝试 To4；不行则要求其恰为 16 字节，否则返回 nil, nil。
// 掩码为 4 字节时地址必须已降为 4 字节；掩码为 16 字节而地址是 4 字节形式
// 时，掩码截取后 4 字节（非持有视图）；其他掩码长度一律返回 nil, nil。
func networkNumberAndMask(n *IPNet) (ip IP, m IPMask) {
	if ip = n.IP.To4(); ip == nil {
		ip = n.IP
		if len(ip) != IPv6len {
			return nil, nil
		}
	}
	m = n.Mask
	switch len(m) {
	case IPv4len:
		if len(ip) != IPv4len {
			return nil, nil
		}
	case IPv6len:
		if len(ip) == IPv4len {
			m = m[12:]
		}
	default:
		return nil, nil
	}
	return
}

// Contains 报告网络 n 是否包含 ip。
// n.IP 未预先掩码化也能正确工作：逐字节比较两侧与掩码按位与后的值。
// 长度无法归一或不一致时返回 false。
func (n *IPNet) Contains(ip IP) bool {
	nn, m := networkNumberAndMask(n)
	if x := ip.To4(); x != nil {
		ip = x
	}
	l := len(ip)
	if l != len(nn) {
		return false
	}
	for i := 0; i < l; i++ {
		if nn[i]&m[i] != ip[i]&m[i] {
			return false
		}
	}
	return true
}
