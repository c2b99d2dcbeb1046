package main

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var englishMessages = []*i18n.Message{
	{ID: "home", Other: "Home"},
	{ID: "games", Other: "Games"},
	{ID: "settings", Other: "Settings"},
}

var spanishMessages = []*i18n.Message{
	{ID: "home", Other: "Inicio"},
	{ID: "games", Other: "Juegos"},
	{ID: "settings", Other: "Ajustes"},
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, englishMessages...); err != nil {
		return nil, err
	}
	if err := bundle.AddMessages(language.Spanish, spanishMessages...); err != nil {
		return nil, err
	}
	return bundle, nil
}

// titles returns a lookup for screen titles in lang, falling back to English.
func titles(bundle *i18n.Bundle, lang string) func(id string) string {
	localizer := i18n.NewLocalizer(bundle, lang, language.English.String())
	return func(id string) string {
		text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return id
		}
		return text
	}
}
