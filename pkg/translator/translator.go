package translator

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var (
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	setSupportedLanguages(cfg.SupportedLanguages)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to read translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	// Catalogs are named after their language: en.toml, fr.toml.
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation catalog", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}

// Match picks the best supported language for an Accept-Language header value.
// English is the fallback.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	base, _ := supported[index].Base()
	return base.String()
}

// Localize resolves msgKey for lang, executing data as template data. The key
// itself is returned when no translation exists.
func Localize(msgKey string, lang string, data map[string]any) string {
	if Translator == nil {
		return msgKey
	}
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		// A key missing from lang is still rendered from the English catalog.
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			zap.L().Debug("translation falls back to default language", zap.String("lang", lang), zap.String("message_id", msgKey))
			return msg
		}
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}

func setSupportedLanguages(langs []string) {
	tags := []language.Tag{language.English}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		if tag == language.English {
			continue
		}
		tags = append(tags, tag)
	}
	supported = tags
	matcher = language.NewMatcher(tags)
}
