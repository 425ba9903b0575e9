package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/promptda/promptda"
)

// Demonstrates the authoring and resolution flow end to end: register
// languages, author a prompt in the base language, attach translations, and
// resolve the record per language.
func main() {
	ctx := context.Background()

	cfg := promptda.DefaultConfig()
	cfg.Site.URL = "https://promptda.example.com"
	cfg.I18N.BaseLanguage = "en"
	cfg.I18N.Languages = []string{"en", "tr", "de"}
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "console"

	module, err := promptda.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := module.TranslationAdmin().ApplySettings(ctx, promptda.Settings{
		TranslationsEnabled: true,
	}); err != nil {
		log.Fatalf("apply settings: %v", err)
	}

	record, err := module.Catalog().Create(ctx, promptda.CreateContentRequest{
		Kind:        promptda.KindPrompt,
		Slug:        "friendly-greeting",
		Title:       "Friendly Greeting",
		Description: "A short prompt that greets the user warmly.",
		Body:        "Greet the user in a **warm** and professional tone.",
		AuthorID:    uuid.New(),
		Translations: map[string]promptda.FieldValues{
			"tr": {
				promptda.FieldTitle:       "Samimi Selamlama",
				promptda.FieldDescription: "Kullaniciyi sicak bir sekilde selamlayan kisa bir prompt.",
			},
			"de": {
				promptda.FieldTitle: "Freundliche Begruessung",
			},
		},
	})
	if err != nil {
		log.Fatalf("create content: %v", err)
	}

	available, err := module.Translations().AvailableLanguages(ctx, record.Kind, record.ID)
	if err != nil {
		log.Fatalf("available languages: %v", err)
	}
	fmt.Printf("translated languages: %v\n", available)

	for _, language := range []string{"en", "tr", "de", "fr"} {
		resolved, meta, err := module.Translations().ResolveWithMeta(ctx, record, record.Kind, record.ID, language)
		if err != nil {
			log.Fatalf("resolve %s: %v", language, err)
		}
		fmt.Printf("[%s] %s fallback=%v fields=%v\n",
			language, resolved.Title, meta.FallbackUsed, meta.TranslatedFields)
	}

	missing, err := module.Translations().CheckTranslations(ctx, record.Kind, record.ID, cfg.SupportedLanguages())
	if err != nil {
		log.Fatalf("check translations: %v", err)
	}
	fmt.Printf("missing translations: %v\n", missing)

	html, err := module.Markdown().RenderBody(record)
	if err != nil {
		log.Fatalf("render body: %v", err)
	}
	fmt.Printf("body html: %s\n", html)
}
