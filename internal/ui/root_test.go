package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/tabqr/tabqr/internal/model"
	"github.com/tabqr/tabqr/internal/qr"
)

// fakeQuerier is a canned TabQuerier for controller tests
type fakeQuerier struct {
	tab *model.Tab
	err error
}

func (f *fakeQuerier) ActiveTab(ctx context.Context) (*model.Tab, error) {
	return f.tab, f.err
}

func newTestUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")

	// Build without starting the async query; tests drive applyTab directly
	return newRootUI(window, app, &fakeQuerier{})
}

func TestApplyTab_RendersValidURL(t *testing.T) {
	ui := newTestUI(t)

	ui.applyTab(&model.Tab{URL: "https://example.com/page", Title: "Example"}, nil)

	if ui.state != model.StateReady {
		t.Errorf("Expected state Ready, got %s", ui.state)
	}
	if ui.currentURL != "https://example.com/page" {
		t.Errorf("Expected current URL to be stored, got %q", ui.currentURL)
	}
	if ui.rendered == nil {
		t.Fatal("Expected a rendered surface")
	}

	bounds := ui.rendered.Bounds()
	if bounds.Dx() != bounds.Dy() {
		t.Errorf("Expected square surface, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	// medium cell (6px), margin 4 cells: side = (modules+8)*6
	if bounds.Dx()%6 != 0 {
		t.Errorf("Expected surface side divisible by medium cell size, got %d", bounds.Dx())
	}

	if ui.copyBtn.Disabled() {
		t.Error("Copy action should be enabled after a successful render")
	}
	if ui.saveBtn.Disabled() {
		t.Error("Save action should be enabled after a successful render")
	}
	if ui.urlButton.Text != "https://example.com/page" {
		t.Errorf("Expected URL display %q, got %q", "https://example.com/page", ui.urlButton.Text)
	}
	if ui.titleLabel.Text != "Example" {
		t.Errorf("Expected title display 'Example', got %q", ui.titleLabel.Text)
	}
}

func TestApplyTab_QueryFailure(t *testing.T) {
	ui := newTestUI(t)

	ui.applyTab(nil, errors.New("no browser at endpoint"))

	if ui.state != model.StateErrored {
		t.Errorf("Expected state Errored, got %s", ui.state)
	}
	if ui.currentURL != "" {
		t.Errorf("Expected empty current URL, got %q", ui.currentURL)
	}
	if ui.rendered != nil {
		t.Error("Expected no rendered surface after failure")
	}
	if !ui.copyBtn.Disabled() || !ui.saveBtn.Disabled() {
		t.Error("Actions should be disabled after failure")
	}
	if ui.urlButton.Text != ui.localization.GetText(KeyURLUnavailable) {
		t.Errorf("Expected unavailable message in URL display, got %q", ui.urlButton.Text)
	}
}

func TestApplyTab_EmptyURL(t *testing.T) {
	ui := newTestUI(t)

	ui.applyTab(&model.Tab{URL: "  "}, nil)

	if ui.state != model.StateErrored {
		t.Errorf("Expected state Errored for blank URL, got %s", ui.state)
	}
}

func TestApplyTab_RestrictedURL(t *testing.T) {
	ui := newTestUI(t)

	ui.applyTab(&model.Tab{URL: "chrome://extensions", Title: "Extensions"}, nil)

	if ui.state != model.StateErrored {
		t.Errorf("Expected state Errored, got %s", ui.state)
	}
	// Restricted URLs never reach the encoder; the render target stays on
	// the placeholder
	if ui.rendered != nil {
		t.Error("Expected no rendered surface for restricted URL")
	}
	if ui.qrImage.Image.Bounds().Dx() != qr.PlaceholderSide {
		t.Errorf("Expected %dpx placeholder, got %d", qr.PlaceholderSide, ui.qrImage.Image.Bounds().Dx())
	}
	if !ui.copyBtn.Disabled() || !ui.saveBtn.Disabled() {
		t.Error("Actions should be disabled for restricted URL")
	}
	if ui.notificationLabel.Text != ui.localization.GetText(KeyRestrictedURL) {
		t.Errorf("Expected restricted-page warning, got %q", ui.notificationLabel.Text)
	}
}

func TestShowError_Idempotent(t *testing.T) {
	ui := newTestUI(t)

	ui.showError()
	firstState := ui.state
	firstSide := ui.qrImage.Image.Bounds().Dx()

	ui.showError()

	if ui.state != firstState {
		t.Errorf("Expected stable state, got %s then %s", firstState, ui.state)
	}
	if ui.qrImage.Image.Bounds().Dx() != firstSide {
		t.Error("Expected stable placeholder dimensions")
	}
	if firstSide != qr.PlaceholderSide {
		t.Errorf("Expected %dpx placeholder, got %d", qr.PlaceholderSide, firstSide)
	}
	if !ui.copyBtn.Disabled() || !ui.saveBtn.Disabled() {
		t.Error("Actions should stay disabled")
	}
}

func TestOnSizeChanged_RerendersAtNewScale(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "https://example.com/page"}, nil)

	ui.onSizeChanged(model.SizeLarge.String())
	largeSide := ui.rendered.Bounds().Dx()

	ui.onSizeChanged(model.SizeSmall.String())
	smallSide := ui.rendered.Bounds().Dx()

	if smallSide >= largeSide {
		t.Errorf("Expected small render (%d) below large render (%d)", smallSide, largeSide)
	}

	// side = cell*(modules + 2*4), so side/cell is the same for both
	if largeSide/8 != smallSide/4 {
		t.Errorf("Inconsistent geometry: large %d @8px vs small %d @4px", largeSide, smallSide)
	}
}

func TestOnSizeChanged_NoopWithoutURL(t *testing.T) {
	ui := newTestUI(t)

	ui.onSizeChanged(model.SizeLarge.String())

	if ui.state != model.StateIdle {
		t.Errorf("Expected state to stay Idle, got %s", ui.state)
	}
	if ui.rendered != nil {
		t.Error("Expected no render without a URL")
	}
}

func TestOnSizeChanged_NoopForRestrictedURL(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "chrome://settings"}, nil)

	ui.onSizeChanged(model.SizeLarge.String())

	if ui.state != model.StateErrored {
		t.Errorf("Expected state to stay Errored, got %s", ui.state)
	}
	if ui.rendered != nil {
		t.Error("Expected no render for restricted URL")
	}
}

func TestOnCopyURL(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "https://example.com/page"}, nil)

	ui.onCopyURL()

	if got := fyne.CurrentApp().Clipboard().Content(); got != "https://example.com/page" {
		t.Errorf("Expected clipboard to hold the URL, got %q", got)
	}
	if ui.notificationLabel.Text != ui.localization.GetText(KeyCopied) {
		t.Errorf("Expected copy success notification, got %q", ui.notificationLabel.Text)
	}
}

func TestOnCopyURL_Empty(t *testing.T) {
	ui := newTestUI(t)

	ui.onCopyURL()

	if ui.notificationLabel.Text != ui.localization.GetText(KeyNothingToCopy) {
		t.Errorf("Expected nothing-to-copy notification, got %q", ui.notificationLabel.Text)
	}
}

func TestOnCopyURL_FallbackSucceeds(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "https://example.com/page"}, nil)

	var fallbackGot string
	ui.clipboardWrite = func(string) error { return errors.New("primary unavailable") }
	ui.clipboardFallback = func(text string) error {
		fallbackGot = text
		return nil
	}

	ui.onCopyURL()

	if fallbackGot != "https://example.com/page" {
		t.Errorf("Expected fallback to receive the URL, got %q", fallbackGot)
	}
	if ui.notificationLabel.Text != ui.localization.GetText(KeyCopied) {
		t.Errorf("Expected success notification after fallback, got %q", ui.notificationLabel.Text)
	}
}

func TestOnCopyURL_BothMechanismsFail(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "https://example.com/page"}, nil)

	ui.clipboardWrite = func(string) error { return errors.New("primary unavailable") }
	ui.clipboardFallback = func(string) error { return errors.New("fallback unavailable") }

	ui.onCopyURL()

	if ui.notificationLabel.Text != ui.localization.GetText(KeyCopyFailed) {
		t.Errorf("Expected copy failure notification, got %q", ui.notificationLabel.Text)
	}
}

func TestOnSaveImage(t *testing.T) {
	ui := newTestUI(t)
	ui.applyTab(&model.Tab{URL: "https://sub.example.co.uk/path?x=1"}, nil)

	dir := t.TempDir()
	ui.settings.SetExportDirectory(dir)

	ui.onSaveImage()

	expected := filepath.Join(dir, "qr_sub.example.co.uk.png")
	if _, err := os.Stat(expected); err != nil {
		t.Errorf("Expected exported file %s, got %v", expected, err)
	}
}

func TestOnSaveImage_NoRender(t *testing.T) {
	ui := newTestUI(t)

	ui.onSaveImage()

	if ui.notificationLabel.Text != ui.localization.GetText(KeySaveFailed) {
		t.Errorf("Expected save failure notification, got %q", ui.notificationLabel.Text)
	}
}

func TestShowNotification_ReplacesPrevious(t *testing.T) {
	ui := newTestUI(t)

	ui.showNotification("first", notifyInfo, false)
	firstSeq := ui.notifySeq
	ui.showNotification("second", notifyWarning, false)

	if ui.notifySeq == firstSeq {
		t.Error("Expected notification sequence to advance")
	}
	if ui.notificationLabel.Text != "second" {
		t.Errorf("Expected latest notification text, got %q", ui.notificationLabel.Text)
	}
	if ui.notificationContainer.Hidden {
		t.Error("Expected notification panel to be visible")
	}
}

func TestNotifyLevel_AutoHide(t *testing.T) {
	if notifyInfo.autoHide() != NotificationAutoHide {
		t.Error("Info notifications should use the default auto-hide")
	}
	if notifyWarning.autoHide() != NotificationWarnAutoHide {
		t.Error("Warnings should linger longer")
	}
	if notifyError.autoHide() != NotificationAutoHide {
		t.Error("Errors should use the default auto-hide")
	}
}
