package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/roster/internal/config"
	"github.com/jeanpaul/roster/internal/export"
	"github.com/jeanpaul/roster/internal/headless"
	"github.com/jeanpaul/roster/internal/people"
	"github.com/jeanpaul/roster/internal/tui"
	"github.com/jeanpaul/roster/pkg/version"
)

func main() {
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")
	headlessFlag := flag.Bool("headless", false, "Run without the TUI (import a roster file and export)")
	importFlag := flag.String("import", "", "Roster yaml file to load (headless mode)")
	xlsxFlag := flag.String("xlsx", "", "Write spreadsheet export to this path (headless mode)")
	docxFlag := flag.String("docx", "", "Write document export to this path (headless mode)")
	exportDirFlag := flag.String("export-dir", "", "Directory for TUI exports (overrides config)")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("roster %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}
	if *exportDirFlag != "" {
		cfg.ExportDir = *exportDirFlag
		if err := cfg.Validate(); err != nil {
			fatal("%s", err)
		}
	}

	exporter := export.Exporter{
		SheetName:      cfg.Export.SheetName,
		MaxColumnWidth: cfg.Export.MaxColumnWidth,
	}

	if *headlessFlag || *importFlag != "" {
		err := headless.Run(headless.Options{
			ImportPath: *importFlag,
			XLSXPath:   *xlsxFlag,
			DocxPath:   *docxFlag,
			Exporter:   exporter,
		})
		if err != nil {
			fatal("%s", err)
		}
		return
	}

	fmt.Print(tui.BannerStyle.Render(tui.Banner))
	fmt.Println(tui.HelpStyle.Render("  session data lives in memory only; export before you quit"))
	fmt.Println()

	// The store is created here, owned by this session and discarded on
	// exit; the TUI only reaches it through its public operations.
	store := people.NewStore()
	m := tui.NewModel(store, cfg)

	var opts []tea.ProgramOption
	if isTerminal() {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithMouseCellMotion())

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		fatal("TUI error: %s", err)
	}
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + tui.BannerStyle.Render("Roster") + ` - people information manager for your terminal

` + tui.SectionStyle.Render("USAGE:") + `
  roster [flags]              Start the interactive manager
  roster --headless --import people.yaml --xlsx out.xlsx --docx out.docx

` + tui.SectionStyle.Render("FLAGS:") + `
  --export-dir <dir>          Where TUI exports are written (default: config or .)
  --headless                  Run without the TUI
  --import <file>             Roster yaml file to load (implies --headless)
  --xlsx <file>               Spreadsheet output path (headless)
  --docx <file>               Document output path (headless)
  --version                   Show version
  --help, -h                  Show this help

` + tui.SectionStyle.Render("KEYS:") + `
  Enter                       Add the person in the form
  Tab / Shift+Tab             Move between form fields
  Ctrl+E                      Export spreadsheet (.xlsx)
  Ctrl+D                      Export document (.docx)
  Ctrl+X (twice)              Clear all records
  PgUp/PgDown                 Scroll the directory
  Esc / Ctrl+C                Quit (session data is discarded)

` + tui.SectionStyle.Render("CONFIG:") + `
  ~/.config/roster/config.yaml   export_dir, theme, form.default_age,
                                 export.sheet_name, export.max_column_width
  Environment overrides use the ROSTER_ prefix (e.g. ROSTER_EXPORT_DIR).
`
	fmt.Println(help)
}
