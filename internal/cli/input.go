// Package cli handles interactive jumble solving from stdin, one query per line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/jumble/internal/logger"
	"github.com/bastiangx/jumble/internal/utils"
	"github.com/bastiangx/jumble/pkg/format"
	"github.com/bastiangx/jumble/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads queries from its input, solves each one and prints
// the ordered matches. The solver keeps its dictionaries between queries.
type InputHandler struct {
	solver       solver.ISolver
	in           io.Reader
	logger       *log.Logger
	limit        int
	color        bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler over stdin and stdout
func NewInputHandler(s solver.ISolver, limit int, color bool) *InputHandler {
	return NewInputHandlerWithIO(s, os.Stdin, os.Stdout, limit, color)
}

// NewInputHandlerWithIO is NewInputHandler with explicit streams
func NewInputHandlerWithIO(s solver.ISolver, in io.Reader, out io.Writer, limit int, color bool) *InputHandler {
	return &InputHandler{
		solver: s,
		in:     in,
		logger: logger.NewTo(out, ""),
		limit:  limit,
		color:  color,
	}
}

// Start begins the interface loop.
// It prompts for letters, reads a line and passes it to handleInput.
// The loop ends cleanly at end of input; a dictionary failure aborts it.
func (h *InputHandler) Start() error {
	h.logger.Print("Jumble CLI")
	h.logger.Print("type some letters and press Enter to unjumble them (Ctrl+C to exit):")
	reader := bufio.NewReader(h.in)

	for {
		h.logger.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if query := strings.TrimSpace(line); query != "" {
			if herr := h.handleInput(query); herr != nil {
				return herr
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// handleInput solves a single query and prints the result list.
func (h *InputHandler) handleInput(query string) error {
	h.requestCount++

	if utils.CountLetters(query) == 0 {
		h.logger.Warnf("No letters in '%s'", query)
		return nil
	}
	if utils.HasForeignLetters(query) {
		h.logger.Warn("Only ASCII letters are used, others are dropped", "query", query)
	}

	result, err := h.solver.Solve(query)
	if err != nil {
		return fmt.Errorf("failed to solve '%s': %w", query, err)
	}
	log.Debugf("Took [ %v ] for '%s' using %s", result.Elapsed, result.Query, result.Strategy)
	if h.requestCount == 1 {
		h.logDictionary()
	}

	if len(result.Words) == 0 {
		h.logger.Warnf("%s for '%s'", format.NoMatches, result.Query)
		return nil
	}

	shown := format.Limit(result.Words, h.limit)
	h.logger.Printf("Found %s words for '%s':", utils.FormatWithCommas(len(result.Words)), result.Query)
	for i, word := range shown {
		if h.color {
			word = wordStyle.Render(word)
		}
		h.logger.Printf("%3d. %s", i+1, word)
	}
	if len(shown) < len(result.Words) {
		h.logger.Printf("... and %d more", len(result.Words)-len(shown))
	}
	return nil
}

func (h *InputHandler) logDictionary() {
	info := h.solver.Info()
	if info.Flat != nil {
		log.Debug("Flat dictionary", "source", info.Source, "words", utils.FormatWithCommas(info.Flat.Words))
	}
	if info.Grouped != nil {
		log.Debug("Grouped dictionary", "source", info.Source, "words", utils.FormatWithCommas(info.Grouped.Words), "groups", info.Grouped.Groups)
	}
}
