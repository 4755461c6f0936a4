package source

import (
	"context"
	"fmt"
	"os"

	"github.com/blues/decentrafund/internal/model"
	"gopkg.in/yaml.v3"
)

// FileSource 从 YAML 文件读取活动, 每次拉取都重新读取文件
type FileSource struct {
	path string
}

type campaignFile struct {
	Campaigns []model.RawCampaign `yaml:"campaigns"`
}

// NewFileSource 创建文件数据源
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch 读取并解析 YAML 文件
func (s *FileSource) Fetch(ctx context.Context) ([]model.RawCampaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read campaigns file %s: %w", s.path, err)
	}

	var f campaignFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse campaigns file %s: %w", s.path, err)
	}

	if f.Campaigns == nil {
		return []model.RawCampaign{}, nil
	}
	return f.Campaigns, nil
}
