package ui

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"huewheel/parser"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func initClipboard() error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", clipboardErr)
	}
	return nil
}

// CopyColor writes c to the system clipboard as a hex code and returns the text written.
func CopyColor(c color.NRGBA) (string, error) {
	if err := initClipboard(); err != nil {
		return "", err
	}

	text := parser.FormatHex(c)
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("[UI] copied %s to clipboard", text)
	return text, nil
}

// PasteColor reads a hex code or colour name from the system clipboard.
func PasteColor() (color.NRGBA, error) {
	if err := initClipboard(); err != nil {
		return color.NRGBA{}, err
	}

	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return color.NRGBA{}, fmt.Errorf("clipboard is empty")
	}

	text := strings.TrimSpace(string(data))
	c, err := parser.ParseColor(text)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("failed to parse clipboard data: %w", err)
	}
	log.Printf("[UI] pasted %s from clipboard", parser.FormatHex(c))
	return c, nil
}
