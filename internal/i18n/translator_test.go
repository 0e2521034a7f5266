package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	tr := NewTranslator(LocaleGerman)

	assert.Equal(t, LocaleGerman, tr.Locale(""))
	assert.Equal(t, LocaleGerman, tr.Locale("de-DE,de;q=0.9"))
	assert.Equal(t, LocaleEnglish, tr.Locale("en-US,en;q=0.9"))
	assert.Equal(t, LocaleEnglish, tr.Locale("EN-gb"))
	assert.Equal(t, LocaleGerman, tr.Locale("fr-FR,fr;q=0.8"))
	assert.Equal(t, LocaleGerman, tr.Locale(";;;"))
}

func TestLocale_EnglishDefault(t *testing.T) {
	tr := NewTranslator(LocaleEnglish)

	assert.Equal(t, LocaleEnglish, tr.DefaultLocale())
	assert.Equal(t, LocaleEnglish, tr.Locale("fr"))
	assert.Equal(t, LocaleGerman, tr.Locale("de"))
}

func TestTranslate(t *testing.T) {
	tr := NewTranslator(LocaleGerman)

	assert.Equal(t, "Kredit nicht gefunden", tr.Translate(LocaleGerman, "Credit not found"))
	assert.Equal(t, "Credit not found", tr.Translate(LocaleEnglish, "Credit not found"))
	assert.Equal(t, "Kredit mit 2 verknüpften Transaktionen kann nicht gelöscht werden",
		tr.Translate(LocaleGerman, "Cannot delete credit with %d linked transactions", 2))
	assert.Equal(t, "Cannot delete credit with 2 linked transactions",
		tr.Translate(LocaleEnglish, "Cannot delete credit with %d linked transactions", 2))
}

func TestTranslate_MissingKeyFallsBack(t *testing.T) {
	tr := NewTranslator(LocaleGerman)

	assert.Equal(t, "__nope__", tr.Translate(LocaleGerman, "__nope__"))
	assert.Equal(t, "Something odd", tr.Translate("fr", "Something odd"))
}
