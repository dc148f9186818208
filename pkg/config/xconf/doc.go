// Package xconf 为 xipctl 提供基于 koanf 的配置加载。
//
// 支持 YAML 与 JSON 两种格式,按文件扩展名自动识别;
// 也可从内存字节直接加载(测试、嵌入配置等场景)。
// [Watch] 基于 fsnotify 监视文件变更并带防抖地自动重载。
//
// 典型用法:
//
//	cfg, err := xconf.Load("/etc/xipctl/networks.yaml")
//	if err != nil { ... }
//	var nets map[string][]string
//	if err := cfg.Unmarshal("networks", &nets); err != nil { ... }
//
// Unmarshal 使用 koanf 结构体标签,可通过 [WithTag] 更换。
package xconf
