// Command att is the console front-end: an interactive prompt loop over the
// shared catalog engine. Unlike the GUI there is no render loop to keep
// responsive, so fetches run synchronously on the prompt goroutine.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/SabeeirSharrma/allthetorr/internal/catalog"
	"github.com/SabeeirSharrma/allthetorr/internal/config"
	"github.com/SabeeirSharrma/allthetorr/internal/magnet"
	"github.com/SabeeirSharrma/allthetorr/internal/model"
	"github.com/SabeeirSharrma/allthetorr/internal/platform"
)

// Console styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

const seedPlea = "!!PLEASE SEED THE TORRENTS TO SUPPORT THE UPLOADERS!!"

const commandHelp = `Commands:
  list      show the full catalog
  search    filter the catalog by title
  sort      show the catalog sorted by size
  info      show details for a torrent id
  download  open a torrent's magnet link
  refresh   re-fetch the catalog
  seturl    change the database URL
  help      show this help
  exit      quit`

type console struct {
	service *catalog.Service
	scanner *bufio.Scanner
}

func main() {
	cfgStore := config.NewStore(config.DefaultPath())
	service := catalog.NewService(cfgStore, catalog.NewFetcher(catalog.DefaultFetchTimeout))

	c := &console{
		service: service,
		scanner: bufio.NewScanner(os.Stdin),
	}

	fmt.Println(titleStyle.Render("AllTheTorr Database"))
	c.refresh()
	c.run()
}

// run is the main prompt loop
func (c *console) run() {
	for {
		cmd, ok := c.ask("Enter command (list/search/sort/info/download/refresh/seturl/help/exit)", "list")
		if !ok {
			return
		}

		switch strings.ToLower(cmd) {
		case "list":
			c.printRecords(c.service.Store().All())
		case "search":
			c.search()
		case "sort":
			c.sort()
		case "info":
			c.info()
		case "download":
			c.download()
		case "refresh":
			c.refresh()
		case "seturl":
			c.setURL()
		case "help":
			fmt.Println(commandHelp)
		case "exit":
			fmt.Println(titleStyle.Render("Goodbye!"))
			return
		default:
			fmt.Println(errorStyle.Render("Unknown command.") + " " + dimStyle.Render("Try 'help'."))
		}
	}
}

// ask prompts for one line of input, returning the default on empty input
// and ok=false when stdin is closed.
func (c *console) ask(prompt, fallback string) (string, bool) {
	if fallback != "" {
		fmt.Printf("\n%s %s: ", promptStyle.Render(prompt), dimStyle.Render("["+fallback+"]"))
	} else {
		fmt.Printf("\n%s: ", promptStyle.Render(prompt))
	}

	if !c.scanner.Scan() {
		return "", false
	}
	line := strings.TrimSpace(c.scanner.Text())
	if line == "" {
		return fallback, true
	}
	return line, true
}

func (c *console) refresh() {
	fmt.Println(dimStyle.Render("Fetching uploads from " + c.service.URL() + " ..."))

	records, err := c.service.Refresh(context.Background())
	if err != nil {
		fmt.Println(errorStyle.Render("Failed to fetch uploads:") + " " + err.Error())
		return
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✔ Database refreshed (%d torrents)", len(records))))
}

func (c *console) search() {
	query, ok := c.ask("Search for", "")
	if !ok {
		return
	}

	results := c.service.Store().Search(query)
	if len(results) == 0 {
		fmt.Println(errorStyle.Render("No results found."))
		return
	}
	c.printRecords(results)
}

func (c *console) sort() {
	choice, ok := c.ask("Sort by size (largest/smallest)", "largest")
	if !ok {
		return
	}

	direction := catalog.Descending
	if strings.EqualFold(choice, "smallest") {
		direction = catalog.Ascending
	}

	fmt.Println(warnStyle.Render(fmt.Sprintf("Sorting by size (%s)...", direction)))
	c.printRecords(c.service.Store().SortBySize(direction))
}

func (c *console) info() {
	record, ok := c.lookupPrompt()
	if !ok {
		return
	}

	verified := errorStyle.Render("✘ Not Verified")
	if record.Verified {
		verified = successStyle.Render("✔ Verified")
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Torrent Info — " + record.ID))
	fmt.Println(headerStyle.Render("Title:       ") + record.GetDisplayTitle())
	fmt.Println(headerStyle.Render("Description: ") + record.Description)
	fmt.Println(headerStyle.Render("Size:        ") + record.GetDisplaySize())
	fmt.Println(headerStyle.Render("Seeds:       ") + fmt.Sprint(record.Seeds))
	fmt.Println(headerStyle.Render("Leeches:     ") + fmt.Sprint(record.Leeches))
	fmt.Println(headerStyle.Render("Verified:    ") + verified)
	fmt.Println(headerStyle.Render("Magnet:      ") + dimStyle.Render(record.Magnet))

	info := magnet.Parse(record.Magnet)
	fmt.Println(headerStyle.Render("Trackers:"))
	printURLList(info.Trackers)
	fmt.Println(headerStyle.Render("Web Seeds:"))
	printURLList(info.WebSeeds)

	fmt.Println(successStyle.Render("Use the download command to start downloading"))
}

func (c *console) download() {
	record, ok := c.lookupPrompt()
	if !ok {
		return
	}
	if record.Magnet == "" {
		fmt.Println(errorStyle.Render("This entry has no magnet link."))
		return
	}

	fmt.Println()
	fmt.Println(errorStyle.Render(seedPlea))

	if err := platform.OpenMagnet(record.Magnet); err != nil {
		fmt.Println(errorStyle.Render("Failed to open magnet: ") + err.Error())
		return
	}
	fmt.Println(successStyle.Render("✔ Magnet opened in your default torrent client."))
}

func (c *console) setURL() {
	newURL, ok := c.ask("Enter new JSON database URL", "")
	if !ok || newURL == "" {
		fmt.Println(errorStyle.Render("URL unchanged."))
		return
	}

	if err := c.service.SetURL(newURL); err != nil {
		fmt.Println(warnStyle.Render("Warning: could not save config: " + err.Error()))
	}
	fmt.Println(successStyle.Render("✔ Database URL updated to " + newURL))
	c.refresh()
}

// lookupPrompt asks for a torrent id and resolves it against the catalog
func (c *console) lookupPrompt() (model.UploadRecord, bool) {
	id, ok := c.ask("Enter torrent ID", "")
	if !ok {
		return model.UploadRecord{}, false
	}

	record, found := c.service.Store().Lookup(id)
	if !found {
		fmt.Println(errorStyle.Render("❌ Torrent ID not found."))
		return model.UploadRecord{}, false
	}
	return record, true
}

// printRecords renders the catalog table
func (c *console) printRecords(records model.Catalog) {
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("The catalog is empty."))
		return
	}

	fmt.Println()
	fmt.Println(errorStyle.Render(seedPlea))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("ID")+"\t"+headerStyle.Render("Title")+"\t"+
		headerStyle.Render("Size")+"\t"+headerStyle.Render("Seeds")+"\t"+headerStyle.Render("Leeches"))
	for _, record := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			record.ID, record.GetDisplayTitle(), record.GetDisplaySize(), record.Seeds, record.Leeches)
	}
	w.Flush()
}

func printURLList(urls []string) {
	if len(urls) == 0 {
		fmt.Println(dimStyle.Render("  (none listed)"))
		return
	}
	for _, u := range urls {
		fmt.Println("  " + u)
	}
}
