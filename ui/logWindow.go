package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"huewheel/config"
)

const (
	initialLinesToShow = 1000 // Show last 1000 lines initially
	linesPerScroll     = 500  // Load 500 more lines when scrolling up
	maxFollowedLines   = 5000 // Drop the oldest displayed lines past this
)

func ShowLogWindow(pickerApp fyne.App) {
	logFilePath := config.LogPath()
	if logFilePath == "" {
		dir, err := config.ConfigDir()
		if err != nil {
			log.Printf("[UI] cannot verify local configuration directory: %v", err)
			return
		}
		logFilePath = filepath.Join(dir, "huewheel.log")
	}
	logDir := filepath.Dir(logFilePath)

	logWindow := pickerApp.NewWindow("huewheel Log Content")
	logWindow.Resize(fyne.NewSize(800, 600))

	// Use a Label for better performance
	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var allLines []string       // All lines read from file
	var displayedLines []string // Currently displayed lines
	var currentStartIndex int   // Index in allLines where displayedLines starts
	var searching bool          // Followed lines don't overwrite search results

	updateDisplay := func() {
		logLabel.SetText(strings.Join(displayedLines, "\n"))
	}

	performSearch := func() {
		query := searchEntry.Text
		if query == "" {
			return
		}
		searching = true
		logLabel.SetText(filterLines(displayedLines, query))
	}
	searchEntry.OnSubmitted = func(string) {
		performSearch()
	}

	searchButton := widget.NewButton("Search", performSearch)

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		searching = false
		updateDisplay()
	})

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(logDir, logWindow)
	})

	loadMoreButton := widget.NewButton("Load More Lines", func() {
		newStartIndex := currentStartIndex - linesPerScroll
		if newStartIndex < 0 {
			newStartIndex = 0
		}

		if newStartIndex == currentStartIndex {
			dialog.ShowInformation("Info", "All available lines are already loaded", logWindow)
			return
		}

		// Prepend the additional lines
		additionalLines := append([]string{}, allLines[newStartIndex:currentStartIndex]...)
		displayedLines = append(additionalLines, displayedLines...)
		currentStartIndex = newStartIndex
		updateDisplay()
	})

	infoLabel := widget.NewLabel("")

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, loadMoreButton, openDirButton),
		searchEntry)

	scroll := container.NewScroll(logLabel)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)

	var follower *tail.Tail
	var closed bool
	logWindow.SetOnClosed(func() {
		closed = true
		if follower != nil {
			follower.Stop()
			follower.Cleanup()
		}
	})
	logWindow.Show()

	// Load file asynchronously, then follow it for new lines
	go func() {
		lines, err := readLines(logFilePath)
		if err != nil {
			fyne.Do(func() {
				logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
			})
			return
		}

		t, err := tail.TailFile(logFilePath, tail.Config{
			Follow:   true,
			ReOpen:   true,
			Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
			Logger:   tail.DiscardingLogger,
		})

		fyne.Do(func() {
			allLines = lines
			currentStartIndex, displayedLines = lastLines(lines, initialLinesToShow)
			infoLabel.SetText(fmt.Sprintf("Showing last %d of %d total lines. New lines are appended as they are written.",
				len(displayedLines), len(allLines)))
			updateDisplay()
			scroll.ScrollToBottom()

			if err != nil {
				dialog.ShowError(fmt.Errorf("cannot follow log file: %w", err), logWindow)
				return
			}
			if closed {
				t.Stop()
				t.Cleanup()
				return
			}
			follower = t
		})
		if err != nil {
			return
		}

		for line := range t.Lines {
			if line.Err != nil {
				continue
			}
			text := line.Text
			fyne.Do(func() {
				allLines = append(allLines, text)
				displayedLines = append(displayedLines, text)
				if len(displayedLines) > maxFollowedLines {
					drop := len(displayedLines) - maxFollowedLines
					displayedLines = displayedLines[drop:]
					currentStartIndex += drop
				}
				if !searching {
					updateDisplay()
					scroll.ScrollToBottom()
				}
			})
		}
	}()
}

// readLines reads every line of the file at path.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return lines, nil
}

// lastLines returns the index of the first of the last n lines, and those lines.
func lastLines(lines []string, n int) (int, []string) {
	if len(lines) <= n {
		return 0, append([]string{}, lines...)
	}
	start := len(lines) - n
	return start, append([]string{}, lines[start:]...)
}

// filterLines returns the lines containing query (case-insensitive) and a match count.
func filterLines(lines []string, query string) string {
	var filtered []string
	queryLower := strings.ToLower(query)

	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}

	if len(filtered) == 0 {
		return fmt.Sprintf("No results found for: %s\n(Searching only in loaded lines)", query)
	}
	return strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered))
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %w", err), parent)
	}
}
