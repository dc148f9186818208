package xnetip

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/alexferl/xnet/pkg/addr/xip"
)

// AddrFromIP 将 xip.IP 转为 netip.Addr。
//
// 长度为 4 的切片映射为 IPv4 地址;长度为 16 的切片先按原样转换,
// 再对 IPv4-mapped 形式做 Unmap,保证 192.0.2.1 无论以 4 字节还是
// 16 字节存储,转换结果都相同(可安全做 map 键)。
// 其他长度返回 [ErrInvalidAddress]。
func AddrFromIP(ip xip.IP) (netip.Addr, error) {
	switch len(ip) {
	case xip.IPv4len:
		return netip.AddrFrom4([4]byte(ip)), nil
	case xip.IPv6len:
		return netip.AddrFrom16([16]byte(ip)).Unmap(), nil
	default:
		return netip.Addr{}, fmt.Errorf("%w: bad length %d", ErrInvalidAddress, len(ip))
	}
}

// IPFromAddr 将 netip.Addr 转为 xip.IP。
//
// IPv4 与 IPv4-mapped 地址统一还原为 16 字节 mapped 表示,
// 与 [xip.ParseIP] 对点分十进制的行为一致。
// 零值 Addr 返回 [ErrInvalidAddress];带 zone 的地址返回
// [ErrZonedAddress],zone 需要调用方经 [WireAddr] 显式携带。
func IPFromAddr(addr netip.Addr) (xip.IP, error) {
	if !addr.IsValid() {
		return nil, fmt.Errorf("%w: zero Addr", ErrInvalidAddress)
	}
	if addr.Zone() != "" {
		return nil, fmt.Errorf("%w: %s", ErrZonedAddress, addr)
	}
	if addr.Is4() || addr.Is4In6() {
		a4 := addr.Unmap().As4()
		return xip.IPv4(a4[0], a4[1], a4[2], a4[3]), nil
	}
	a16 := addr.As16()
	return xip.IP(a16[:]), nil
}

// PrefixFromIPNet 将 xip.IPNet 转为规范化的 netip.Prefix。
//
// 掩码必须是规范前缀掩码(Size 可逆),且位宽与地址族一致;
// 否则返回 [ErrInvalidNetwork]。结果已做 Masked 规范化。
func PrefixFromIPNet(n *xip.IPNet) (netip.Prefix, error) {
	if n == nil {
		return netip.Prefix{}, fmt.Errorf("%w: nil IPNet", ErrInvalidNetwork)
	}
	addr, err := AddrFromIP(n.IP)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}
	ones, bits := n.Mask.Size()
	if bits == 0 {
		return netip.Prefix{}, fmt.Errorf("%w: non-canonical mask %s", ErrInvalidNetwork, n.Mask)
	}
	if bits != addr.BitLen() {
		return netip.Prefix{}, fmt.Errorf("%w: %d-bit mask on %d-bit address", ErrInvalidNetwork, bits, addr.BitLen())
	}
	return netip.PrefixFrom(addr, ones).Masked(), nil
}

// IPNetFromPrefix 将 netip.Prefix 转为 xip.IPNet。
//
// 地址部分先做 Masked 归零主机位;IPv4 前缀产出 4 字节 IP 与
// 4 字节掩码,与 [xip.ParseCIDR] 的输出形态一致。
func IPNetFromPrefix(p netip.Prefix) (*xip.IPNet, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: zero Prefix", ErrInvalidNetwork)
	}
	p = p.Masked()
	addr := p.Addr().Unmap()
	ip, err := IPFromAddr(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}
	mask := xip.CIDRMask(p.Bits(), addr.BitLen())
	return &xip.IPNet{IP: ip.Mask(mask), Mask: mask}, nil
}

// RangeOfIPNet 返回网络覆盖的连续地址区间。
func RangeOfIPNet(n *xip.IPNet) (netipx.IPRange, error) {
	p, err := PrefixFromIPNet(n)
	if err != nil {
		return netipx.IPRange{}, err
	}
	return netipx.RangeOfPrefix(p), nil
}

// SetFromIPNets 把一组网络合并为不可变的 IPSet,重叠与相邻区间自动归并。
// 任一网络不可转换即整体失败,错误信息带上出错下标。
func SetFromIPNets(nets []*xip.IPNet) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, n := range nets {
		p, err := PrefixFromIPNet(n)
		if err != nil {
			return nil, fmt.Errorf("nets[%d]: %w", i, err)
		}
		b.AddPrefix(p)
	}
	return b.IPSet()
}
