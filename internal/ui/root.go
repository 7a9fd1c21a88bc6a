package ui

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/SabeeirSharrma/allthetorr/internal/catalog"
	"github.com/SabeeirSharrma/allthetorr/internal/model"
	"github.com/SabeeirSharrma/allthetorr/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window  fyne.Window
	service *catalog.Service

	urlEntry    *widget.Entry
	searchEntry *widget.Entry
	recordList  *widget.List
	infoBox     *widget.RichText
	downloadBtn *widget.Button
	statusLabel *widget.Label

	// Buttons disabled while a fetch is in flight
	fetchControls []*widget.Button

	// visible is the dataset currently rendered in the list: the active
	// catalog, a search result, or a sorted view of it.
	visible  model.Catalog
	selected int
}

// NewRootUI creates and initializes the main UI and kicks off the initial
// background fetch.
func NewRootUI(window fyne.Window, service *catalog.Service) *RootUI {
	ui := &RootUI{
		window:   window,
		service:  service,
		selected: -1,
	}

	ui.setupUI()
	ui.startFetch()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetText(ui.service.URL())
	updateBtn := widget.NewButton(LabelUpdateURL, ui.onUpdateURL)
	refreshBtn := widget.NewButton(LabelRefresh, ui.onRefresh)
	helpBtn := widget.NewButton(LabelHelp, ui.onShowHelp)
	helpBtn.Importance = widget.LowImportance

	urlRow := container.NewBorder(nil, nil,
		widget.NewLabel(LabelDatabaseURL),
		container.NewHBox(updateBtn, refreshBtn, helpBtn),
		ui.urlEntry,
	)

	// Search and sort row
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(SearchPlaceholder)
	ui.searchEntry.OnSubmitted = func(string) { ui.onSearch() }
	searchBtn := widget.NewButton(LabelSearch, ui.onSearch)
	sortSmallBtn := widget.NewButton(LabelSortSmall, func() { ui.onSort(catalog.Ascending) })
	sortLargeBtn := widget.NewButton(LabelSortLarge, func() { ui.onSort(catalog.Descending) })

	searchRow := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchBtn, sortSmallBtn, sortLargeBtn),
		ui.searchEntry,
	)

	ui.fetchControls = []*widget.Button{updateBtn, refreshBtn, searchBtn, sortSmallBtn, sortLargeBtn}

	// Record list (left pane)
	ui.recordList = widget.NewList(
		func() int { return len(ui.visible) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.visible) {
				return
			}
			obj.(*widget.Label).SetText(ui.visible[id].ListLabel())
		},
	)
	ui.recordList.OnSelected = ui.onSelect
	ui.recordList.OnUnselected = func(widget.ListItemID) {
		ui.selected = -1
	}

	// Info view and download button (right pane)
	ui.infoBox = widget.NewRichTextFromMarkdown("")
	ui.infoBox.Wrapping = fyne.TextWrapWord
	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance

	rightPane := container.NewBorder(nil, ui.downloadBtn, nil, nil,
		container.NewVScroll(ui.infoBox),
	)

	split := container.NewHSplit(ui.recordList, rightPane)
	split.SetOffset(SplitOffset)

	// Status bar
	ui.statusLabel = widget.NewLabel(StatusSeedPlea)

	content := container.NewBorder(
		container.NewVBox(urlRow, searchRow), // top
		ui.statusLabel,                       // bottom
		nil,                                  // left
		nil,                                  // right
		split,                                // center
	)

	ui.window.SetContent(content)
}

// startFetch disables the controls and refreshes the catalog in the
// background; the completion callback re-enters the UI thread via fyne.Do.
func (ui *RootUI) startFetch() {
	ui.setControlsEnabled(false)
	ui.setStatus(StatusFetching)

	ui.service.RefreshAsync(func(records model.Catalog, err error) {
		fyne.Do(func() {
			ui.setControlsEnabled(true)

			if err != nil {
				// The previously installed catalog, if any, stays visible
				// and queryable.
				ui.setStatus(fmt.Sprintf("Failed to fetch: %v", err))
				dialog.ShowError(fmt.Errorf("could not refresh the catalog:\n%w", err), ui.window)
				return
			}

			ui.showRecords(records)
			ui.setStatus(fmt.Sprintf("Loaded %d torrents.", len(records)))
		})
	})
}

// showRecords swaps the visible dataset and resets the selection
func (ui *RootUI) showRecords(records model.Catalog) {
	ui.visible = records
	ui.selected = -1
	ui.recordList.UnselectAll()
	ui.infoBox.ParseMarkdown("")
	ui.recordList.Refresh()
}

func (ui *RootUI) setControlsEnabled(enabled bool) {
	for _, btn := range ui.fetchControls {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// setTransientStatus shows a message and restores the seed plea once it ages
// out, unless another message replaced it in the meantime.
func (ui *RootUI) setTransientStatus(message string) {
	ui.setStatus(message)
	go func() {
		time.Sleep(StatusMessageTimeout)
		fyne.Do(func() {
			if ui.statusLabel.Text == message {
				ui.setStatus(StatusSeedPlea)
			}
		})
	}()
}

// onRefresh re-fetches the currently configured URL
func (ui *RootUI) onRefresh() {
	ui.startFetch()
}

// onUpdateURL persists the entered URL and refreshes against it
func (ui *RootUI) onUpdateURL() {
	newURL := strings.TrimSpace(ui.urlEntry.Text)
	if err := validateURL(newURL); err != nil {
		dialog.ShowInformation("Invalid URL", "Please enter a valid JSON URL.", ui.window)
		return
	}

	if err := ui.service.SetURL(newURL); err != nil {
		// Non-fatal: the URL is applied in memory, only persistence failed.
		log.Printf("Config save failed: %v", err)
		ui.setTransientStatus("Database URL updated (warning: could not save config).")
	} else {
		ui.setTransientStatus("Database URL updated.")
	}

	ui.startFetch()
}

// onSearch filters the active catalog by the entered query
func (ui *RootUI) onSearch() {
	results := ui.service.Store().Search(ui.searchEntry.Text)
	ui.showRecords(results)
	ui.setStatus(fmt.Sprintf("Search results: %d", len(results)))
}

// onSort shows a size-sorted view of the active catalog
func (ui *RootUI) onSort(direction catalog.SortDirection) {
	ui.showRecords(ui.service.Store().SortBySize(direction))
	ui.setStatus(fmt.Sprintf("Sorted by size (%s)", direction))
}

// onSelect renders the info view for the selected record
func (ui *RootUI) onSelect(id widget.ListItemID) {
	if id >= len(ui.visible) {
		return
	}
	ui.selected = id
	ui.infoBox.ParseMarkdown(RecordInfoMarkdown(ui.visible[id]))
}

// onDownload hands the selected record's magnet URI to the OS handler
func (ui *RootUI) onDownload() {
	if ui.selected < 0 || ui.selected >= len(ui.visible) {
		dialog.ShowInformation("No selection", "Please select a torrent to download.", ui.window)
		return
	}

	record := ui.visible[ui.selected]
	if record.Magnet == "" {
		dialog.ShowInformation("No magnet", "This entry has no magnet link.", ui.window)
		return
	}

	if err := platform.OpenMagnet(record.Magnet); err != nil {
		log.Printf("Failed to open magnet for %s: %v", record.ID, err)
		dialog.ShowError(fmt.Errorf("failed to open magnet:\n%w", err), ui.window)
		return
	}

	ui.setTransientStatus("Magnet opened in default torrent client.")
}

// onShowHelp opens the tabbed help dialog
func (ui *RootUI) onShowHelp() {
	ShowHelpDialog(ui.window)
}

// validateURL accepts http(s) URLs only
func validateURL(input string) error {
	if input == "" {
		return fmt.Errorf("URL is empty")
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}
