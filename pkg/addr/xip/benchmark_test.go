package xip

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析基准测试（对标 net/netip）
// =============================================================================

func BenchmarkParseIPv4(b *testing.B) {
	b.Run("xip.ParseIP", func(b *testing.B) {
		for b.Loop() {
			_ = ParseIP("192.168.1.1")
		}
	})
	b.Run("netip.ParseAddr", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("192.168.1.1")
		}
	})
}

func BenchmarkParseIPv6(b *testing.B) {
	b.Run("xip.ParseIP", func(b *testing.B) {
		for b.Loop() {
			_ = ParseIP("2001:db8:85a3::8a2e:370:7334")
		}
	})
	b.Run("netip.ParseAddr", func(b *testing.B) {
		for b.Loop() {
			_, _ = netip.ParseAddr("2001:db8:85a3::8a2e:370:7334")
		}
	})
}

func BenchmarkParseCIDR(b *testing.B) {
	b.Run("v4", func(b *testing.B) {
		for b.Loop() {
			_, _, _ = ParseCIDR("192.168.1.0/24")
		}
	})
	b.Run("v6", func(b *testing.B) {
		for b.Loop() {
			_, _, _ = ParseCIDR("2001:db8::/32")
		}
	})
}

// =============================================================================
// 格式化基准测试
// =============================================================================

func BenchmarkIPString(b *testing.B) {
	v4 := IPv4(192, 168, 1, 1)
	v6 := ParseIP("2001:db8:85a3::8a2e:370:7334")

	b.Run("v4", func(b *testing.B) {
		for b.Loop() {
			_ = v4.String()
		}
	})
	b.Run("v6", func(b *testing.B) {
		for b.Loop() {
			_ = v6.String()
		}
	})
}

// =============================================================================
// 谓词与掩码基准测试
// =============================================================================

func BenchmarkContains(b *testing.B) {
	_, n, _ := ParseCIDR("172.16.0.0/12")
	ip := IPv4(172, 16, 1, 1)
	for b.Loop() {
		_ = n.Contains(ip)
	}
}

func BenchmarkEqual(b *testing.B) {
	a := IPv4(192, 168, 1, 1)
	c := IP{192, 168, 1, 1}
	for b.Loop() {
		_ = a.Equal(c)
	}
}

func BenchmarkClassify(b *testing.B) {
	ip := IPv4(192, 168, 1, 1)
	for b.Loop() {
		_ = Classify(ip)
	}
}
