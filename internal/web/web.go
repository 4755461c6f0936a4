package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// LandingTemplate 落地页模板名
const LandingTemplate = "landing.tmpl"

// Templates 解析内置模板
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// Funcs 模板函数
func Funcs() template.FuncMap {
	return template.FuncMap{
		"percent": func(v float64) string {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			return fmt.Sprintf("%.1f", math.Max(0, math.Min(100, v)))
		},
		// 渐显动画延迟: base + index*step 毫秒
		"delay": func(base, step, index int) int {
			return base + index*step
		},
		"json": func(s string) template.JS {
			return template.JS(s)
		},
	}
}
