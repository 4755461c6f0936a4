package config

import (
	"strings"
	"time"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Landing  LandingConfig  `mapstructure:"landing"`
	Source   SourceConfig   `mapstructure:"source"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	AssetsDir       string        `mapstructure:"assets_dir"`       // 静态资源目录
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // 优雅退出超时
}

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"` // 启用后统计卡片从活动表计算
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// LandingConfig 落地页配置
type LandingConfig struct {
	Locale        string        `mapstructure:"locale"`         // 默认语言
	Locales       []string      `mapstructure:"locales"`        // 支持的语言列表
	CampaignsPath string        `mapstructure:"campaigns_path"` // 活动列表页路径
	UnitDecimals  int           `mapstructure:"unit_decimals"`  // 展示单位对应的基础单位位数
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`  // 活动数据拉取超时
	Stats         []StatConfig  `mapstructure:"stats"`          // 统计数据展示
}

// StatConfig 单个统计卡片
type StatConfig struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
	Label string `mapstructure:"label"`
}

// SourceConfig 活动数据源配置
type SourceConfig struct {
	Kind  string `mapstructure:"kind"`  // 数据源类型: stub, file, database, chain
	File  string `mapstructure:"file"`  // kind=file 时的 YAML 文件路径
	Limit int    `mapstructure:"limit"` // 精选活动数量上限
}

// CacheConfig Redis 快照缓存配置
type CacheConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	TTL          time.Duration `mapstructure:"ttl"`
	WarmInterval time.Duration `mapstructure:"warm_interval"` // 预热任务间隔
}

// ChainConfig 链上数据源配置
type ChainConfig struct {
	RpcUrl          string `mapstructure:"rpc_url"`          // RPC节点URL
	ContractAddress string `mapstructure:"contract_address"` // 众筹合约地址
	Workers         int    `mapstructure:"workers"`          // 并发读取协程数
}

// StorageConfig MinIO 图片存储配置
type StorageConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Endpoint   string        `mapstructure:"endpoint"`
	AccessKey  string        `mapstructure:"access_key"`
	SecretKey  string        `mapstructure:"secret_key"`
	Bucket     string        `mapstructure:"bucket"`
	UseSSL     bool          `mapstructure:"use_ssl"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
	Fallback   string        `mapstructure:"fallback"` // 无图片时的占位图
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

// DefaultStats 原落地页上的统计卡片
var DefaultStats = []StatConfig{
	{Key: "projects_funded", Value: "1,200+", Label: "Projects Funded"},
	{Key: "raised", Value: "$5.8M", Label: "Raised"},
	{Key: "backers", Value: "85,000+", Label: "Backers"},
	{Key: "success_rate", Value: "92%", Label: "Success Rate"},
}

// LoadFrom 使用指定的 viper 实例加载配置，file 为空时按默认路径查找
func LoadFrom(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/decentrafund")
	}

	setDefaults(v)

	// 自动读取环境变量, 例如 LANDING_LOCALE
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if len(config.Landing.Stats) == 0 {
		config.Landing.Stats = append([]StatConfig(nil), DefaultStats...)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.assets_dir", "assets")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "decentrafund")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("landing.locale", "en-US")
	v.SetDefault("landing.locales", []string{"en-US", "en-GB", "de", "fr", "es"})
	v.SetDefault("landing.campaigns_path", "/campaigns")
	v.SetDefault("landing.unit_decimals", 14)
	v.SetDefault("landing.fetch_timeout", 5*time.Second)
	v.SetDefault("source.kind", "stub")
	v.SetDefault("source.file", "campaigns.yaml")
	v.SetDefault("source.limit", 6)
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("cache.warm_interval", 30*time.Second)
	v.SetDefault("chain.workers", 4)
	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.bucket", "campaign-images")
	v.SetDefault("storage.presign_ttl", time.Hour)
	v.SetDefault("storage.fallback", "/assets/campaign-placeholder.jpg")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file", "logs/app.log")
}
