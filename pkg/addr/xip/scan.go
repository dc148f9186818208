package xip

// scanGuard 是十进制/十六进制扫描器的溢出保护常量。
// 累加值一旦达到该值即判定失败。任何合法字段（IPv4 八位段 ≤ 255、
// IPv6 组 ≤ 0xFFFF、前缀长度 ≤ 128）都远小于此值，
// 因此扫描器无需任意精度运算即可拒绝所有越界输入。
const scanGuard = 0xFFFFFF

// dtoi 贪婪解析 s 开头的十进制数字串。
// 返回 (数值, 消耗的字符数, 是否成功)。
// 未消耗任何数字或累加值达到 scanGuard 时失败。
func dtoi(s string) (n int, i int, ok bool) {
	n = 0
	for i = 0; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n >= scanGuard {
			return scanGuard, i, false
		}
	}
	if i == 0 {
		return 0, 0, false
	}
	return n, i, true
}

// xtoi 贪婪解析 s 开头的十六进制数字串（大小写均可）。
// 返回 (数值, 消耗的字符数, 是否成功)。
// 未消耗任何数字或累加值达到 scanGuard 时失败。
func xtoi(s string) (n int, i int, ok bool) {
	n = 0
	for i = 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			n *= 16
			n += int(s[i] - '0')
		} else if 'a' <= s[i] && s[i] <= 'f' {
			n *= 16
			n += int(s[i]-'a') + 10
		} else if 'A' <= s[i] && s[i] <= 'F' {
			n *= 16
			n += int(s[i]-'A') + 10
		} else {
			break
		}
		if n >= scanGuard {
			return 0, i, false
		}
	}
	if i == 0 {
		return 0, i, false
	}
	return n, i, true
}

// hexDigit 是小写十六进制字母表。
const hexDigit = "0123456789abcdef"

// uitoa 将无符号整数转为十进制字符串，不带符号、不带前导零。
func uitoa(val uint) string {
	if val == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf) - 1
	for val >= 10 {
		q := val / 10
		buf[i] = byte('0' + val - q*10)
		i--
		val = q
	}
	buf[i] = byte('0' + val)
	return string(buf[i:])
}

// appendHex 将 i 以小写十六进制追加到 b，不带前导零（i 为 0 时输出单个 '0'）。
func appendHex(b []byte, i uint32) []byte {
	if i == 0 {
		return append(b, '0')
	}
	for j := 7; j >= 0; j-- {
		v := i >> uint(j*4)
		if v > 0 {
			b = append(b, hexDigit[v&0xf])
		}
	}
	return b
}

// hexString 将字节序列转为小写十六进制字符串，无分隔符。
func hexString(b []byte) string {
	s := make([]byte, len(b)*2)
	for i, tn := range b {
		s[i*2], s[i*2+1] = hexDigit[tn>>4], hexDigit[tn&0xf]
	}
	return string(s)
}

// last 返回 b 在 s 中最后一次出现的字节下标，不存在时返回 -1。
func last(s string, b byte) int {
	i := len(s)
	for i--; i >= 0; i-- {
		if s[i] == b {
			break
		}
	}
	return i
}
