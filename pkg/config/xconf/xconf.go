package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 配置文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Option 加载选项。
type Option func(*options)

type options struct {
	delim string
	tag   string
}

func defaultOptions() *options {
	return &options{delim: ".", tag: "koanf"}
}

// WithDelim 设置键路径分隔符,默认 "."。
func WithDelim(delim string) Option {
	return func(o *options) { o.delim = delim }
}

// WithTag 设置 Unmarshal 使用的结构体标签,默认 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) { o.tag = tag }
}

// Config 持有已加载的配置树。
// 所有方法并发安全;Reload 原子替换内部 koanf 实例。
type Config struct {
	mu     sync.RWMutex
	k      *koanf.Koanf
	path   string
	format Format
	opts   *options
}

// Load 从文件加载配置,按扩展名(.yaml/.yml/.json)识别格式。
func Load(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	k := koanf.New(o.delim)
	if err := loadData(k, data, format); err != nil {
		return nil, err
	}
	return &Config{k: k, path: path, format: format, opts: o}, nil
}

// LoadBytes 从内存字节加载配置,格式需显式给出。
// 空数据产生空配置树,Unmarshal 得到目标零值。
func LoadBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	if !validFormat(format) {
		return nil, ErrUnsupportedFormat
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	k := koanf.New(o.delim)
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}
	return &Config{k: k, format: format, opts: o}, nil
}

// Koanf 返回底层 koanf 实例,基础读取操作直接在其上进行。
func (c *Config) Koanf() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Unmarshal 将 path 下的子树反序列化到 target,path 为空时取整棵树。
func (c *Config) Unmarshal(path string, target any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: c.opts.tag}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

// Reload 重新读取并解析配置文件,成功后原子替换配置树。
// 解析失败时旧配置保持可用。来自 LoadBytes 的配置返回 [ErrNotReloadable]。
func (c *Config) Reload() error {
	if c.path == "" {
		return ErrNotReloadable
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	k := koanf.New(c.opts.delim)
	if err := loadData(k, data, c.format); err != nil {
		return err
	}
	c.mu.Lock()
	c.k = k
	c.mu.Unlock()
	return nil
}

// Path 返回配置文件路径,LoadBytes 创建的配置返回空串。
func (c *Config) Path() string { return c.path }

// Format 返回配置格式。
func (c *Config) Format() Format { return c.format }

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func validFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}

func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
