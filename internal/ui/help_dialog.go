package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const helpFAQ = `## FAQ

**Q: How do I update the torrent database?**

A: Enter a new raw JSON URL in the field and click *Update URL*.

**Q: How do I refresh the torrent list?**

A: Click *Refresh DB* to reload the data.

**Q: Are all torrents legal?**

A: This app is intended to display verified, legal torrents from the database.

**Q: Why won't magnets open?**

A: Ensure your torrent client is installed and set as the default handler for magnet links.`

const helpShortcuts = `## Shortcuts

**Enter** — Trigger search (when focus is in the search box)

**Click item** — Show torrent info in the right pane

**Download button** — Open the selected magnet in your torrent client`

const helpCredits = `## Credits

**AllTheTorr — GUI Edition**

Developed by **Sabeeir Sharrma**

This program is designed to distribute verified, legal torrents only.`

// ShowHelpDialog opens the tabbed help window (FAQ, Shortcuts, Credits)
func ShowHelpDialog(window fyne.Window) {
	tabs := container.NewAppTabs(
		container.NewTabItem("FAQ", helpTab(helpFAQ)),
		container.NewTabItem("Shortcuts", helpTab(helpShortcuts)),
		container.NewTabItem("Credits", helpTab(helpCredits)),
	)

	help := dialog.NewCustom("AllTheTorr — Help", "Close", tabs, window)
	help.Resize(fyne.NewSize(HelpDialogWidth, HelpDialogHeight))
	help.Show()
}

func helpTab(markdown string) fyne.CanvasObject {
	text := widget.NewRichTextFromMarkdown(markdown)
	text.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(text)
}
