// Package locale resolves the widget locale and holds the labels the default
// delegates render.
package locale

import (
	"slices"
	"strings"
)

// Default is used whenever the requested locale is empty or unsupported.
const Default = "en"

// Labels are the user-facing strings of the default delegates.
type Labels struct {
	LoadEarlier   string
	Loading       string
	Send          string
	CopyText      string
	Cancel        string
	ActionsPrompt string
}

var catalog = map[string]Labels{
	"en": {
		LoadEarlier:   "Load earlier messages",
		Loading:       "Loading...",
		Send:          "Send",
		CopyText:      "Copy Text",
		Cancel:        "Cancel",
		ActionsPrompt: "Message actions",
	},
	"es": {
		LoadEarlier:   "Cargar mensajes anteriores",
		Loading:       "Cargando...",
		Send:          "Enviar",
		CopyText:      "Copiar texto",
		Cancel:        "Cancelar",
		ActionsPrompt: "Acciones del mensaje",
	},
	"fr": {
		LoadEarlier:   "Charger les messages précédents",
		Loading:       "Chargement...",
		Send:          "Envoyer",
		CopyText:      "Copier le texte",
		Cancel:        "Annuler",
		ActionsPrompt: "Actions du message",
	},
	"de": {
		LoadEarlier:   "Ältere Nachrichten laden",
		Loading:       "Wird geladen...",
		Send:          "Senden",
		CopyText:      "Text kopieren",
		Cancel:        "Abbrechen",
		ActionsPrompt: "Nachrichtenaktionen",
	},
	"pt": {
		LoadEarlier:   "Carregar mensagens anteriores",
		Loading:       "Carregando...",
		Send:          "Enviar",
		CopyText:      "Copiar texto",
		Cancel:        "Cancelar",
		ActionsPrompt: "Ações da mensagem",
	},
}

// Supported returns the supported locale codes in sorted order.
func Supported() []string {
	codes := make([]string, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// IsSupported reports whether code names a supported locale exactly.
func IsSupported(code string) bool {
	_, ok := catalog[code]
	return ok
}

// Resolve maps a requested locale onto a supported one. Region tags fall back
// to their base language ("fr-CA" resolves to "fr"); anything else resolves to
// Default.
func Resolve(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if IsSupported(code) {
		return code
	}
	if base, _, ok := strings.Cut(strings.ReplaceAll(code, "_", "-"), "-"); ok && IsSupported(base) {
		return base
	}
	return Default
}

// For returns the labels for a locale, resolving it first.
func For(code string) Labels {
	return catalog[Resolve(code)]
}
