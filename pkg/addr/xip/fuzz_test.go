package xip

import (
	"net/netip"
	"testing"
)

// =============================================================================
// 解析器与 net/netip 的交叉验证
// =============================================================================

// FuzzParseIPAgainstNetip 用标准库 netip 做解析器的差分测试。
// netip 接受的不带 zone 的输入，本包必须接受且规范形式逐字符相同
// （netip 对 IPv4-mapped 地址保留 "::ffff:" 前缀，比较前先 Unmap）。
func FuzzParseIPAgainstNetip(f *testing.F) {
	f.Add("192.0.2.1")
	f.Add("0.0.0.0")
	f.Add("255.255.255.255")
	f.Add("::")
	f.Add("::1")
	f.Add("2001:db8::1")
	f.Add("::ffff:192.0.2.1")
	f.Add("0:0:0:0:0:ffff:192.0.2.1")
	f.Add("fe80::1")
	f.Add("1:2:3:4:5:6:7:8")
	f.Add("2001:0db8::00001")
	f.Add("0123.0.0.1")
	f.Add("127.0.0.256")
	f.Add("1::2::3")
	f.Add("abc")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		got := ParseIP(s)

		ref, refErr := netip.ParseAddr(s)
		refOK := refErr == nil && ref.Zone() == ""

		if refOK && got == nil {
			t.Fatalf("ParseIP(%q) = nil, netip accepts it as %v", s, ref)
		}
		if got == nil || !refOK {
			// 本包的语法是 netip 的超集：十六进制组只限值(≤ 0xffff)
			// 不限位数，零填充组如 "2001:0db8::00001" 也能接受，
			// 因此拒绝方向只校验单向一致。
			return
		}
		if want := ref.Unmap().String(); got.String() != want {
			t.Errorf("ParseIP(%q).String() = %q, want %q", s, got.String(), want)
		}
	})
}

// FuzzParseIPRoundTrip 验证规范化幂等：接受的输入格式化后再解析，结果不变。
func FuzzParseIPRoundTrip(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("::1")
	f.Add("2001:db8::68")
	f.Add("::ffff:10.0.0.1")
	f.Add("ff02::2")

	f.Fuzz(func(t *testing.T, s string) {
		ip := ParseIP(s)
		if ip == nil {
			return
		}
		canon := ip.String()
		again := ParseIP(canon)
		if again == nil {
			t.Fatalf("canonical form %q of %q does not re-parse", canon, s)
		}
		if !ip.Equal(again) {
			t.Errorf("round-trip of %q changed address: %v != %v", s, ip, again)
		}
		if again.String() != canon {
			t.Errorf("canonicalization of %q not idempotent: %q != %q", s, again.String(), canon)
		}
	})
}

// =============================================================================
// CIDR 解析模糊测试
// =============================================================================

// FuzzParseCIDRAgainstNetip 用 netip.ParsePrefix 做 CIDR 的差分测试。
// netip 接受的输入本包必须接受且解析结果一致；网络号以 Masked 后的前缀比较。
func FuzzParseCIDRAgainstNetip(f *testing.F) {
	f.Add("192.0.2.0/24")
	f.Add("135.104.0.1/24")
	f.Add("2001:db8::/32")
	f.Add("::1/128")
	f.Add("0.0.0.0/0")
	f.Add("192.168.1.1/33")
	f.Add("10.0.0.1")
	f.Add("/24")

	f.Fuzz(func(t *testing.T, s string) {
		ip, n, err := ParseCIDR(s)

		ref, refErr := netip.ParsePrefix(s)
		if refErr != nil {
			// 本包的 CIDR 语法是 netip 的超集（接受 4-in-6 地址形式和
			// 前缀长度的前导零写法），因此只校验单向一致。
			return
		}
		if err != nil {
			t.Fatalf("ParseCIDR(%q) = %v, netip accepts it as %v", s, err, ref)
		}
		if want := ref.Addr().Unmap().String(); ip.String() != want {
			t.Errorf("address of %q: got %q, want %q", s, ip.String(), want)
		}
		masked := ref.Masked()
		if want := masked.Addr().Unmap().String(); n.IP.String() != want {
			t.Errorf("network number of %q: got %q, want %q", s, n.IP.String(), want)
		}
		ones, _ := n.Mask.Size()
		if ones != masked.Bits() {
			t.Errorf("prefix length of %q: got %d, want %d", s, ones, masked.Bits())
		}
	})
}
