package xip

import "errors"

// ErrMalformedLiteral 表示无法解析的地址/网络文本。
// [ParseError] 通过 Unwrap 链接到此哨兵，调用方可用 errors.Is 统一分流。
var ErrMalformedLiteral = errors.New("xip: malformed literal")

// ParseError 描述一次失败的字面量解析。
// 它是一个普通返回值，不是 panic：Type 标识期望的字面量种类
// （"IP address" 或 "CIDR address"），Text 原样携带完整的违规输入。
type ParseError struct {
	Type string // 期望的字面量种类
	Text string // 违规的原始文本
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Text
}

func (e *ParseError) Unwrap() error { return ErrMalformedLiteral }

// AddrError 描述一个内容非法的地址值（而非文本）。
// 目前仅由 [IP.MarshalText] 在长度非法时返回。
type AddrError struct {
	Err  string
	Addr string
}

func (e *AddrError) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Err
	if e.Addr != "" {
		s = "address " + e.Addr + ": " + s
	}
	return s
}
