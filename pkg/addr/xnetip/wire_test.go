package xnetip

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alexferl/xnet/pkg/addr/xip"
)

// ===== WireAddr =====

func TestWireAddrFrom(t *testing.T) {
	tests := []struct {
		name    string
		ip      xip.IP
		zone    string
		want    WireAddr
		wantErr bool
	}{
		{name: "IPv4", ip: xip.IPv4(192, 0, 2, 1), want: WireAddr{Addr: "192.0.2.1"}},
		{name: "IPv6 规范化输出", ip: xip.ParseIP("2001:0db8:0:0:0:0:0:1"), want: WireAddr{Addr: "2001:db8::1"}},
		{name: "带 zone", ip: xip.ParseIP("fe80::1"), zone: "eth0", want: WireAddr{Addr: "fe80::1", Zone: "eth0"}},
		{name: "长度非法", ip: xip.IP{1, 2, 3}, wantErr: true},
		{name: "nil", ip: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := WireAddrFrom(tt.ip, tt.zone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestWireAddrToIP(t *testing.T) {
	t.Run("合法地址", func(t *testing.T) {
		ip, zone, err := WireAddr{Addr: "fe80::1", Zone: "en0"}.ToIP()
		require.NoError(t, err)
		assert.True(t, xip.ParseIP("fe80::1").Equal(ip))
		assert.Equal(t, "en0", zone)
	})
	t.Run("非法字面量", func(t *testing.T) {
		_, _, err := WireAddr{Addr: "not-an-ip"}.ToIP()
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
	t.Run("零值", func(t *testing.T) {
		_, _, err := WireAddr{}.ToIP()
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestWireAddrZeroAndString(t *testing.T) {
	assert.True(t, WireAddr{}.IsZero())
	assert.False(t, WireAddr{Addr: "::1"}.IsZero())
	assert.Equal(t, "fe80::1%eth0", WireAddr{Addr: "fe80::1", Zone: "eth0"}.String())
	assert.Equal(t, "192.0.2.1", WireAddr{Addr: "192.0.2.1"}.String())
}

func TestWireAddrJSON(t *testing.T) {
	w, err := WireAddrFrom(xip.ParseIP("fe80::1"), "eth0")
	require.NoError(t, err)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"fe80::1","zone":"eth0"}`, string(data))

	var back WireAddr
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, w, back)

	// zone 为空时 omitempty 生效
	data, err = json.Marshal(WireAddr{Addr: "10.0.0.1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"10.0.0.1"}`, string(data))
}

func TestWireAddrBSON(t *testing.T) {
	w, err := WireAddrFrom(xip.IPv4(203, 0, 113, 9), "")
	require.NoError(t, err)

	data, err := bson.Marshal(w)
	require.NoError(t, err)

	var back WireAddr
	require.NoError(t, bson.Unmarshal(data, &back))
	assert.Equal(t, w, back)

	ip, _, err := back.ToIP()
	require.NoError(t, err)
	assert.True(t, xip.IPv4(203, 0, 113, 9).Equal(ip))
}

// ===== WireNet =====

func TestWireNetFrom(t *testing.T) {
	t.Run("合法网络", func(t *testing.T) {
		_, n, err := xip.ParseCIDR("192.0.2.0/24")
		require.NoError(t, err)
		w, err := WireNetFrom(n)
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.0/24", w.Net)
	})
	t.Run("非规范掩码拒绝", func(t *testing.T) {
		n := &xip.IPNet{IP: xip.IP{198, 51, 100, 0}, Mask: xip.IPMask{0xc0, 0, 0xff, 0}}
		_, err := WireNetFrom(n)
		assert.ErrorIs(t, err, ErrInvalidNetwork)
	})
	t.Run("nil 拒绝", func(t *testing.T) {
		_, err := WireNetFrom(nil)
		assert.ErrorIs(t, err, ErrInvalidNetwork)
	})
}

func TestWireNetToIPNet(t *testing.T) {
	t.Run("主机位归零", func(t *testing.T) {
		n, err := WireNet{Net: "192.0.2.77/24"}.ToIPNet()
		require.NoError(t, err)
		assert.Equal(t, "192.0.2.0/24", n.String())
	})
	t.Run("非法字面量", func(t *testing.T) {
		_, err := WireNet{Net: "192.0.2.0"}.ToIPNet()
		assert.ErrorIs(t, err, ErrInvalidNetwork)
	})
	t.Run("零值", func(t *testing.T) {
		_, err := WireNet{}.ToIPNet()
		assert.ErrorIs(t, err, ErrInvalidNetwork)
	})
}

func TestWireNetBSONRoundTrip(t *testing.T) {
	_, n, err := xip.ParseCIDR("2001:db8::/48")
	require.NoError(t, err)
	w, err := WireNetFrom(n)
	require.NoError(t, err)

	data, err := bson.Marshal(w)
	require.NoError(t, err)

	var back WireNet
	require.NoError(t, bson.Unmarshal(data, &back))
	assert.Equal(t, w, back)

	got, err := back.ToIPNet()
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/48", got.String())
}

func TestWireNetZeroAndString(t *testing.T) {
	assert.True(t, WireNet{}.IsZero())
	w := WireNet{Net: "10.0.0.0/8"}
	assert.False(t, w.IsZero())
	assert.Equal(t, "10.0.0.0/8", w.String())
}
