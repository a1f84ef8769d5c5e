// resume 生成静态简历页
//
// 用法:
//
//	go run ./cmd/resume --format html --out resume.html
//	go run ./cmd/resume --format term
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/athakkar/portfolio/pkg/config"
	"github.com/athakkar/portfolio/pkg/resume"
)

var (
	configPath = flag.String("config", "data/resume.yaml", "简历配置文件路径")
	format     = flag.String("format", "html", "输出格式: html 或 term")
	outPath    = flag.String("out", "", "输出文件路径（默认标准输出）")
	width      = flag.Int("width", resume.DefaultTerminalWidth, "终端输出宽度")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "resume: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadResumeConfig(*configPath)
	if err != nil {
		return err
	}
	page := resume.NewPage(cfg)
	log.Printf("[Resume] 页眉 %d 项, 正文 %d 节", len(page.Header().Items), len(page.Body().Sections))

	write, err := renderer(*format, page, *width)
	if err != nil {
		return err
	}
	if *outPath == "" {
		return write(os.Stdout)
	}
	return writeFile(*outPath, write)
}

// renderer 按输出格式返回写入函数
func renderer(format string, page *resume.Page, width int) (func(io.Writer) error, error) {
	switch format {
	case "html":
		return func(w io.Writer) error { return resume.RenderHTML(w, page) }, nil
	case "term":
		return func(w io.Writer) error {
			_, err := fmt.Fprintln(w, resume.RenderTerminal(page, width))
			return err
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html or term)", format)
	}
}

// writeFile 创建文件并写入，关闭失败同样视为写入失败
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	log.Printf("[Resume] 已写入 %s", path)
	return nil
}
