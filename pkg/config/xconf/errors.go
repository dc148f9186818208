package xconf

import "errors"

// 预定义错误变量,调用方可用 errors.Is 判断
var (
	// ErrEmptyPath 表示配置文件路径为空
	ErrEmptyPath = errors.New("xconf: empty config path")

	// ErrUnsupportedFormat 表示扩展名或格式不受支持
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")

	// ErrLoadFailed 表示读取配置文件失败
	ErrLoadFailed = errors.New("xconf: failed to load config")

	// ErrParseFailed 表示配置内容解析失败
	ErrParseFailed = errors.New("xconf: failed to parse config")

	// ErrUnmarshalFailed 表示反序列化到目标结构体失败
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")

	// ErrNotReloadable 表示配置并非来自文件,无法重载或监视
	ErrNotReloadable = errors.New("xconf: config not backed by a file")
)
