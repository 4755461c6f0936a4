package media

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/blues/decentrafund/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Passthrough 直接使用活动中的图片地址, 为空时使用占位图
type Passthrough struct {
	Fallback string
}

// Resolve 返回可直接渲染的图片地址
func (p Passthrough) Resolve(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return p.Fallback
	}
	return image
}

// MinioResolver 将对象存储中的图片键转换为预签名地址.
// http(s) 地址原样返回.
type MinioResolver struct {
	client   *minio.Client
	bucket   string
	ttl      time.Duration
	fallback string
}

// MinioConfig MinIO 连接配置
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	TTL       time.Duration
	Fallback  string
}

// NewMinioResolver 创建 MinIO 图片解析器
func NewMinioResolver(cfg MinioConfig) (*MinioResolver, error) {
	if cfg.Region == "" {
		// 指定区域后预签名不需要访问服务端
		cfg.Region = "us-east-1"
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MinioResolver{
		client:   client,
		bucket:   cfg.Bucket,
		ttl:      ttl,
		fallback: cfg.Fallback,
	}, nil
}

// Resolve 返回图片的可访问地址, 签名失败时退回占位图
func (m *MinioResolver) Resolve(image string) string {
	image = strings.TrimSpace(image)
	if image == "" {
		return m.fallback
	}
	if IsAbsoluteURL(image) {
		return image
	}

	key := strings.TrimPrefix(image, "/")
	u, err := m.client.PresignedGetObject(context.Background(), m.bucket, key, m.ttl, url.Values{})
	if err != nil {
		logger.Warn("Failed to presign image %s: %v", key, err)
		return m.fallback
	}
	return u.String()
}

// IsAbsoluteURL 判断是否为可直接访问的地址
func IsAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ipfs", "data":
		return true
	}
	return false
}
