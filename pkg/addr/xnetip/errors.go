package xnetip

import "errors"

// 预定义错误变量,调用方可用 errors.Is 判断
var (
	// ErrInvalidAddress 表示地址无法转换或字面量非法
	ErrInvalidAddress = errors.New("xnetip: invalid address")

	// ErrInvalidNetwork 表示网络无法转换,常见原因是掩码非规范(非连续前缀)
	ErrInvalidNetwork = errors.New("xnetip: invalid network")

	// ErrZonedAddress 表示地址携带 zone,无法安全进入 range/set 域
	ErrZonedAddress = errors.New("xnetip: zoned address not representable")
)
