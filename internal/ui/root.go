package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tabqr/tabqr/internal/browser"
	"github.com/tabqr/tabqr/internal/config"
	"github.com/tabqr/tabqr/internal/export"
	"github.com/tabqr/tabqr/internal/guard"
	"github.com/tabqr/tabqr/internal/model"
	"github.com/tabqr/tabqr/internal/platform"
	"github.com/tabqr/tabqr/internal/qr"
)

// notifyLevel selects the auto-hide duration of a notification
type notifyLevel int

const (
	notifyInfo notifyLevel = iota
	notifyWarning
	notifyError
)

// autoHide returns how long a notification of this level stays visible
func (nl notifyLevel) autoHide() time.Duration {
	if nl == notifyWarning {
		return NotificationWarnAutoHide
	}
	return NotificationAutoHide
}

// RootUI represents the main UI structure. It owns the current URL and the
// render target and threads them through the guard, renderer, and actions.
type RootUI struct {
	window       fyne.Window
	tabSvc       browser.TabQuerier
	settings     *config.Settings
	localization *Localization

	state      model.ViewState
	currentURL string
	sizeClass  model.SizeClass
	rendered   *image.RGBA

	titleLabel *widget.Label
	urlButton  *widget.Button
	qrImage    *canvas.Image
	qrArea     *fyne.Container
	copyBtn    *widget.Button
	saveBtn    *widget.Button
	refreshBtn *widget.Button
	sizeSelect *widget.Select

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// notifySeq invalidates pending auto-hide timers when a newer
	// notification replaces an older one
	notifySeq int

	// Clipboard mechanisms; swappable so failure paths are testable
	clipboardWrite    func(string) error
	clipboardFallback func(string) error
}

// NewRootUI creates and initializes the main UI and kicks off the
// active-tab query.
func NewRootUI(window fyne.Window, app fyne.App, tabSvc browser.TabQuerier) *RootUI {
	ui := newRootUI(window, app, tabSvc)
	ui.startTabQuery()
	return ui
}

// newRootUI builds the UI without starting the asynchronous tab query
func newRootUI(window fyne.Window, app fyne.App, tabSvc browser.TabQuerier) *RootUI {
	settings := config.NewSettings(app)
	localization := NewLocalization()

	ui := &RootUI{
		window:       window,
		tabSvc:       tabSvc,
		settings:     settings,
		localization: localization,
		state:        model.StateIdle,
		sizeClass:    model.SizeMedium,
	}

	ui.clipboardWrite = ui.writeToolkitClipboard
	ui.clipboardFallback = platform.CopyText

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Tab title and clickable URL display
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	ui.urlButton = widget.NewButton("", ui.onCopyURL)
	ui.urlButton.Importance = widget.LowImportance

	// QR render area starts on the blank placeholder
	ui.qrImage = canvas.NewImageFromImage(qr.Placeholder())
	ui.qrImage.FillMode = canvas.ImageFillContain
	ui.qrImage.SetMinSize(fyne.NewSize(qr.PlaceholderSide, qr.PlaceholderSide))
	ui.qrArea = container.NewCenter(ui.qrImage)

	// Size selector; selection resets to medium on every launch
	options := []string{}
	for _, sc := range model.SizeClassOptions() {
		options = append(options, sc.String())
	}
	ui.sizeSelect = widget.NewSelect(options, ui.onSizeChanged)
	ui.sizeSelect.Selected = model.SizeMedium.String()

	// Action buttons
	ui.copyBtn = widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopyURL), ui.onCopyURL)
	ui.saveBtn = widget.NewButton(IconSave+" "+ui.localization.GetText(KeySavePNG), ui.onSaveImage)
	ui.refreshBtn = widget.NewButton(IconRefresh, ui.onRefresh)
	ui.refreshBtn.Importance = widget.LowImportance
	ui.copyBtn.Disable()
	ui.saveBtn.Disable()

	// Notification panel (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	header := container.NewBorder(nil, nil, nil, ui.refreshBtn, ui.titleLabel)
	sizeRow := container.NewBorder(nil, nil, widget.NewLabel(ui.localization.GetText(KeySize)), nil, ui.sizeSelect)
	actions := container.NewGridWithColumns(2, ui.copyBtn, ui.saveBtn)

	content := container.NewVBox(
		header,
		ui.urlButton,
		ui.qrArea,
		sizeRow,
		actions,
		ui.notificationContainer,
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// startTabQuery moves to the loading state and fetches the active tab in
// the background. Exactly one query is in flight at a time.
func (ui *RootUI) startTabQuery() {
	if ui.state == model.StateLoading {
		return
	}

	ui.state = model.StateLoading
	ui.copyBtn.Disable()
	ui.saveBtn.Disable()
	ui.showNotification(ui.localization.GetText(KeyLoadingTab), notifyInfo, true)

	go ui.loadActiveTab()
}

// loadActiveTab queries the browser and applies the result on the UI thread
func (ui *RootUI) loadActiveTab() {
	tab, err := ui.tabSvc.ActiveTab(context.Background())

	fyne.Do(func() {
		ui.applyTab(tab, err)
	})
}

// applyTab consumes the tab-query result and drives guard and renderer
func (ui *RootUI) applyTab(tab *model.Tab, err error) {
	if err != nil || !tab.HasURL() {
		if err != nil {
			log.Printf("Active tab query failed: %v", err)
		}
		ui.currentURL = ""
		ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
		ui.urlButton.SetText(ui.localization.GetText(KeyURLUnavailable))
		ui.showNotification(ui.localization.GetText(KeyURLUnavailable), notifyError, false)
		ui.showError()
		return
	}

	ui.currentURL = tab.URL
	ui.titleLabel.SetText(guard.FormatForDisplay(tab.DisplayTitle(), URLMaxDisplay))
	ui.urlButton.SetText(guard.FormatForDisplay(tab.URL, URLMaxDisplay))

	log.Printf("Active tab: %s", tab.URL)

	if guard.IsRestricted(tab.URL) {
		ui.showNotification(ui.localization.GetText(KeyRestrictedURL), notifyWarning, false)
		ui.showError()
		return
	}

	ui.generate()
}

// generate renders the current URL at the selected size class. Defensive:
// an empty or restricted URL degrades to the error state without touching
// the encoder.
func (ui *RootUI) generate() {
	if ui.currentURL == "" || guard.IsRestricted(ui.currentURL) {
		ui.showError()
		return
	}

	matrix, err := qr.Encode(ui.currentURL)
	if err != nil {
		log.Printf("QR encoding failed for %s: %v", ui.currentURL, err)
		ui.showNotification(ui.localization.GetText(KeyEncodeFailed), notifyError, false)
		ui.showError()
		return
	}

	cellSize := ui.sizeClass.CellSize()
	img := qr.Render(matrix, cellSize)
	side := img.Bounds().Dx()

	log.Printf("Rendered %d modules at cell size %d (%dx%d)", matrix.Size(), cellSize, side, side)

	ui.rendered = img
	ui.qrImage.Image = img
	ui.qrImage.SetMinSize(fyne.NewSize(float32(side), float32(side)))
	ui.qrImage.Refresh()

	ui.hideNotification()
	ui.copyBtn.Enable()
	ui.saveBtn.Enable()
	ui.state = model.StateReady
}

// showError resets the render area to the blank placeholder and disables
// both actions. Idempotent; callable from any state.
func (ui *RootUI) showError() {
	ui.rendered = nil
	ui.qrImage.Image = qr.Placeholder()
	ui.qrImage.SetMinSize(fyne.NewSize(qr.PlaceholderSide, qr.PlaceholderSide))
	ui.qrImage.Refresh()

	ui.notificationSpinner.Hide()
	ui.copyBtn.Disable()
	ui.saveBtn.Disable()
	ui.state = model.StateErrored
}

// onRefresh re-runs the active-tab query on demand
func (ui *RootUI) onRefresh() {
	log.Printf("Manual refresh requested")
	ui.startTabQuery()
}

// onSizeChanged re-renders at the newly selected size. A no-op while no
// renderable URL is held.
func (ui *RootUI) onSizeChanged(selected string) {
	ui.sizeClass = model.SizeClass(selected)

	if ui.currentURL == "" || guard.IsRestricted(ui.currentURL) {
		return
	}

	ui.generate()
}

// onCopyURL copies the current URL to the system clipboard, falling back
// to the external copy command when the toolkit clipboard fails
func (ui *RootUI) onCopyURL() {
	if ui.currentURL == "" {
		ui.showNotification(ui.localization.GetText(KeyNothingToCopy), notifyError, false)
		return
	}

	if err := ui.clipboardWrite(ui.currentURL); err != nil {
		log.Printf("Primary clipboard write failed: %v", err)

		if err := ui.clipboardFallback(ui.currentURL); err != nil {
			log.Printf("Fallback clipboard write failed: %v", err)
			ui.showNotification(ui.localization.GetText(KeyCopyFailed), notifyError, false)
			return
		}
	}

	ui.showNotification(ui.localization.GetText(KeyCopied), notifyInfo, false)
}

// writeToolkitClipboard is the primary copy mechanism. A panic from a
// missing driver clipboard is converted to an error so the fallback runs.
func (ui *RootUI) writeToolkitClipboard(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("toolkit clipboard unavailable: %v", r)
		}
	}()

	clipboard := fyne.CurrentApp().Clipboard()
	if clipboard == nil {
		return fmt.Errorf("toolkit clipboard unavailable")
	}
	clipboard.SetContent(text)
	return nil
}

// onSaveImage exports the current render target as a PNG file
func (ui *RootUI) onSaveImage() {
	if ui.rendered == nil {
		ui.showNotification(ui.localization.GetText(KeySaveFailed), notifyError, false)
		return
	}

	filename := export.Filename(ui.currentURL)
	dir := ui.settings.GetExportDirectory()

	path, err := export.Save(ui.rendered, dir, filename)
	if err != nil {
		log.Printf("Export failed: %v", err)
		ui.showNotification(ui.localization.GetText(KeySaveFailed), notifyError, false)
		return
	}

	log.Printf("Exported QR code to %s", path)
	ui.showNotification(ui.localization.GetText(KeySavedTo)+" "+path, notifyInfo, false)
}

// showNotification displays a message in the notification panel. When
// spinning is true, a spinner indicates background activity. The panel
// auto-hides after the level's duration unless replaced first.
func (ui *RootUI) showNotification(message string, level notifyLevel, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	ui.notifySeq++
	seq := ui.notifySeq

	// Spinner notifications stay until explicitly replaced or hidden
	if spinning {
		return
	}

	go func() {
		time.Sleep(level.autoHide())
		fyne.Do(func() {
			if ui.notifySeq == seq {
				ui.hideNotification()
			}
		})
	}()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}
