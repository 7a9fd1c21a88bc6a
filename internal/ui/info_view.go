package ui

import (
	"fmt"
	"strings"

	"github.com/SabeeirSharrma/allthetorr/internal/magnet"
	"github.com/SabeeirSharrma/allthetorr/internal/model"
)

// RecordInfoMarkdown renders the info view for one record: the display
// fields, the verification badge, and the magnet decomposition into trackers
// and web seeds. Pure so it can be tested without a canvas.
func RecordInfoMarkdown(record model.UploadRecord) string {
	var b strings.Builder

	badge := BadgeNotVerified
	if record.Verified {
		badge = BadgeVerified
	}

	fmt.Fprintf(&b, "## %s\n\n", record.GetDisplayTitle())
	if strings.TrimSpace(record.Description) != "" {
		fmt.Fprintf(&b, "%s\n\n", record.Description)
	}
	fmt.Fprintf(&b, "**Size:** %s\n\n", record.GetDisplaySize())
	fmt.Fprintf(&b, "**Seeds:** %d · **Leeches:** %d\n\n", record.Seeds, record.Leeches)
	fmt.Fprintf(&b, "**%s**\n\n", badge)

	if record.Magnet != "" {
		fmt.Fprintf(&b, "**Magnet Link:**\n\n`%s`\n\n", record.Magnet)
	}

	info := magnet.Parse(record.Magnet)
	b.WriteString("**Trackers:**\n\n")
	if len(info.Trackers) == 0 {
		b.WriteString("*No trackers listed*\n\n")
	} else {
		for _, tracker := range info.Trackers {
			fmt.Fprintf(&b, "- %s\n", tracker)
		}
		b.WriteString("\n")
	}

	b.WriteString("**Web Seeds:**\n\n")
	if len(info.WebSeeds) == 0 {
		b.WriteString("*No web seeds listed*\n\n")
	} else {
		for _, seed := range info.WebSeeds {
			fmt.Fprintf(&b, "- %s\n", seed)
		}
		b.WriteString("\n")
	}

	b.WriteString("*Click Download to open the magnet link in your torrent client.*")
	return b.String()
}
