package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResumeConfig 简历页配置
//
// 页面固定由页眉、正文、页脚三个区域组成。
// 页眉条目按声明顺序渲染，不检查重复。
//
// 配置文件位置: data/resume.yaml
type ResumeConfig struct {
	Title  string       `yaml:"title"`
	Header HeaderConfig `yaml:"header"`
	Body   BodyConfig   `yaml:"body"`
	Footer FooterConfig `yaml:"footer"`
}

// HeaderConfig 页眉条目列表
type HeaderConfig struct {
	Items []string `yaml:"items"`
}

// BodyConfig 正文
type BodyConfig struct {
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig 正文小节
type SectionConfig struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
}

// FooterConfig 页脚
type FooterConfig struct {
	Lines []string `yaml:"lines"`
}

// LoadResumeConfig 加载简历页配置
func LoadResumeConfig(path string) (*ResumeConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseResumeConfig(data)
}

// ParseResumeConfig 解析 YAML 数据
func ParseResumeConfig(data []byte) (*ResumeConfig, error) {
	var cfg ResumeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resume config: %w", err)
	}
	return &cfg, nil
}
