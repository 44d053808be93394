package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyCopyURL        = "copy_url"
	KeySavePNG        = "save_png"
	KeyRefresh        = "refresh"
	KeySize           = "size"
	KeyLoadingTab     = "loading_tab"
	KeyURLUnavailable = "url_unavailable"
	KeyRestrictedURL  = "restricted_url"
	KeyNothingToCopy  = "nothing_to_copy"
	KeyCopied         = "copied"
	KeyCopyFailed     = "copy_failed"
	KeySavedTo        = "saved_to"
	KeySaveFailed     = "save_failed"
	KeyEncodeFailed   = "encode_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "TabQR",
		KeyCopyURL:        "Copy URL",
		KeySavePNG:        "Save PNG",
		KeyRefresh:        "Refresh",
		KeySize:           "Size",
		KeyLoadingTab:     "Looking up the active tab...",
		KeyURLUnavailable: "URL unavailable",
		KeyRestrictedURL:  "This page cannot be shown as a QR code",
		KeyNothingToCopy:  "Nothing to copy",
		KeyCopied:         "URL copied to clipboard",
		KeyCopyFailed:     "Could not copy URL",
		KeySavedTo:        "Saved to",
		KeySaveFailed:     "Could not save image",
		KeyEncodeFailed:   "Could not generate QR code",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "TabQR",
		KeyCopyURL:        "Копировать URL",
		KeySavePNG:        "Сохранить PNG",
		KeyRefresh:        "Обновить",
		KeySize:           "Размер",
		KeyLoadingTab:     "Поиск активной вкладки...",
		KeyURLUnavailable: "URL недоступен",
		KeyRestrictedURL:  "Эту страницу нельзя показать как QR-код",
		KeyNothingToCopy:  "Нечего копировать",
		KeyCopied:         "URL скопирован в буфер обмена",
		KeyCopyFailed:     "Не удалось скопировать URL",
		KeySavedTo:        "Сохранено в",
		KeySaveFailed:     "Не удалось сохранить изображение",
		KeyEncodeFailed:   "Не удалось создать QR-код",
	}
}
