package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/i18n"
	"golang.org/x/text/language"
)

func TestTranslate(t *testing.T) {
	service, err := i18n.New("en")
	require.NoError(t, err)

	assert.Equal(t, "Insufficient balance", service.T("validation.insufficient_balance", language.English))
	assert.Equal(t, "Guthaben nicht ausreichend", service.T("validation.insufficient_balance", language.German))

	// unknown languages fall back to the default catalog
	assert.Equal(t, "Insufficient balance", service.T("validation.insufficient_balance", language.French))

	// unknown message IDs fall back to the ID itself
	assert.Equal(t, "does.not.exist", service.T("does.not.exist", language.English))
}

func TestParseAcceptLanguage(t *testing.T) {
	service, err := i18n.New("en")
	require.NoError(t, err)

	assert.Equal(t, language.German, service.ParseAcceptLanguage("de"))
	assert.Equal(t, language.German, service.ParseAcceptLanguage("de-DE,de;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, service.ParseAcceptLanguage(""))
	assert.Equal(t, language.English, service.ParseAcceptLanguage("fr"))
	assert.Equal(t, language.English, service.ParseAcceptLanguage("not a header"))
}

func TestInvalidDefaultLanguage(t *testing.T) {
	_, err := i18n.New("!!invalid!!")
	require.Error(t, err)
}
