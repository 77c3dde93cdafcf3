package config

// Storage 本地快照存储配置
type Storage struct {
	Path string `json:"path" yaml:"path"` // 快照文件路径
}

func ProvideStorage(cfg *Config) *Storage {
	return cfg.Storage
}
