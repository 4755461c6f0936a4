package handler

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LangParam 选择语言的查询参数
const LangParam = "lang"

// LocaleResolver 根据请求选择格式化使用的语言
type LocaleResolver struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewLocaleResolver 创建语言解析器, 默认语言排在第一位作为兜底
func NewLocaleResolver(def string, supported []string) *LocaleResolver {
	defTag, err := language.Parse(def)
	if err != nil {
		defTag = language.AmericanEnglish
	}

	tags := []language.Tag{defTag}
	for _, s := range supported {
		tag, err := language.Parse(strings.TrimSpace(s))
		if err != nil || tag == defTag {
			continue
		}
		tags = append(tags, tag)
	}

	return &LocaleResolver{
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}
}

// Default 默认语言
func (r *LocaleResolver) Default() language.Tag {
	return r.supported[0]
}

// Resolve 依次使用 ?lang= 参数和 Accept-Language 头选择语言
func (r *LocaleResolver) Resolve(req *http.Request) language.Tag {
	if req == nil {
		return r.Default()
	}

	if lang := strings.TrimSpace(req.URL.Query().Get(LangParam)); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return r.match(tag)
		}
	}

	if accept := strings.TrimSpace(req.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return r.match(tags...)
		}
	}

	return r.Default()
}

func (r *LocaleResolver) match(tags ...language.Tag) language.Tag {
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.Default()
	}
	return r.supported[index]
}
