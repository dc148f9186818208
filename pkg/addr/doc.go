// Package addr 提供 IP 地址相关的子包。
//
// 子包列表：
//   - xip: 切片模型的地址引擎(解析、格式化、掩码运算、分类)
//   - xnetip: xip 与 net/netip、go4.org/netipx 之间的桥接与传输结构
package addr
