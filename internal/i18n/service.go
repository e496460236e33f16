package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	accept "github.com/timewasted/go-accept-headers"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Service resolves localized panel strings (validation messages, status
// texts) from the embedded message catalog.
type Service struct {
	bundle      *i18n.Bundle
	matcher     language.Matcher
	defaultLang language.Tag
	tags        []language.Tag
}

// New parses the embedded message files. The default language is used
// whenever negotiation fails.
func New(defaultLanguage string) (*Service, error) {
	defaultLang, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default language %q", defaultLanguage)
	}

	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message files")
	}

	tags := []language.Tag{defaultLang}

	for _, file := range files {
		msgFile, err := bundle.LoadMessageFileFS(messageFS, "messages/"+file.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load message file %q", file.Name())
		}

		if msgFile.Tag != defaultLang {
			tags = append(tags, msgFile.Tag)
		}
	}

	return &Service{
		bundle:      bundle,
		matcher:     language.NewMatcher(tags),
		defaultLang: defaultLang,
		tags:        tags,
	}, nil
}

// T translates the message ID into the given language, falling back to
// the default language and finally to the ID itself.
func (s *Service) T(messageID string, lang language.Tag, templateData ...map[string]any) string {
	localizer := i18n.NewLocalizer(s.bundle, lang.String())

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 {
		cfg.TemplateData = templateData[0]
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		log.Warn().Str("message_id", messageID).Err(err).Msg("Failed to localize message")
		return messageID
	}

	return msg
}

// ParseAcceptLanguage negotiates the best supported language for an
// Accept-Language header.
func (s *Service) ParseAcceptLanguage(header string) language.Tag {
	if header == "" {
		return s.defaultLang
	}

	supported := make([]string, 0, len(s.tags))
	for _, tag := range s.tags {
		supported = append(supported, tag.String())
	}

	negotiated, err := accept.Negotiate(header, supported...)
	if err != nil || negotiated == "" {
		return s.defaultLang
	}

	tag, err := language.Parse(negotiated)
	if err != nil {
		return s.defaultLang
	}

	return tag
}

// Tags returns the languages the catalog supports.
func (s *Service) Tags() []language.Tag {
	return s.tags
}
