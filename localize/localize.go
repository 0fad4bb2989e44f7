// Package localize renders go-i18n messages with fluentser arguments as
// template data.
package localize

import (
	"github.com/Station-Manager/errors"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/i18n-kit/fluentser"
)

// NewBundle returns a message bundle with the given default language and
// TOML message files enabled.
func NewBundle(tag language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Localizer resolves message IDs against a bundle, falling back to the
// default language when a requested locale has no translation.
type Localizer struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// New creates a Localizer for the given bundle and default language.
func New(bundle *i18n.Bundle, defaultLanguage language.Tag) *Localizer {
	return &Localizer{
		bundle:          bundle,
		defaultLanguage: defaultLanguage,
	}
}

// Message renders the message identified by id using args as template data.
// Locales are tried in order before the default language. A nil args renders
// the message without template data.
func (l *Localizer) Message(locales []string, id string, args *fluentser.Args) (string, error) {
	const op errors.Op = "localize.Message"
	if id == "" {
		return "", errors.New(op).Msg(ErrMsgEmptyMessageID)
	}
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if args != nil {
		cfg.TemplateData = args.TemplateData()
	}
	msg, err := l.localizer(locales).Localize(cfg)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return msg, nil
}

// MessagePlural renders a pluralized message, selecting the plural form from
// count in addition to the template data.
func (l *Localizer) MessagePlural(locales []string, id string, count int, args *fluentser.Args) (string, error) {
	const op errors.Op = "localize.MessagePlural"
	if id == "" {
		return "", errors.New(op).Msg(ErrMsgEmptyMessageID)
	}
	cfg := &i18n.LocalizeConfig{MessageID: id, PluralCount: count}
	if args != nil {
		cfg.TemplateData = args.TemplateData()
	}
	msg, err := l.localizer(locales).Localize(cfg)
	if err != nil {
		return "", errors.New(op).Err(err)
	}
	return msg, nil
}

func (l *Localizer) localizer(locales []string) *i18n.Localizer {
	chain := make([]string, 0, len(locales)+1)
	chain = append(chain, locales...)
	chain = append(chain, l.defaultLanguage.String())
	return i18n.NewLocalizer(l.bundle, chain...)
}
