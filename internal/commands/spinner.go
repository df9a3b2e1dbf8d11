package commands

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Gradient colors for animation
var gradientColors = []lipgloss.Color{
	lipgloss.Color("#ff6b6b"),
	lipgloss.Color("#feca57"),
	lipgloss.Color("#48dbfb"),
	lipgloss.Color("#ff9ff3"),
	lipgloss.Color("#54a0ff"),
	lipgloss.Color("#5f27cd"),
	lipgloss.Color("#00d2d3"),
	lipgloss.Color("#1dd1a1"),
}

var (
	colorText    = lipgloss.Color("#c0caf5")
	colorTextDim = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorError   = lipgloss.Color("#f7768e")
	colorPrimary = lipgloss.Color("#7aa2f7")
	colorWarning = lipgloss.Color("#e0af68")
)

// spinner handles the animated loading indicator for one-shot mode.
type spinner struct {
	message string
	stop    chan struct{}
	done    chan struct{}
	mu      sync.Mutex
	frame   int
	stopped bool
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins the animation on a background goroutine.
func (s *spinner) start() {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		// Hide cursor
		fmt.Fprint(os.Stderr, "\033[?25l")

		for {
			select {
			case <-s.stop:
				// Clear line and show cursor
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.mu.Lock()
				s.render()
				s.frame++
				s.mu.Unlock()
			}
		}
	}()
}

func (s *spinner) render() {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	spinIdx := s.frame % len(chars)
	spinColor := gradientColors[s.frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])
	text := lipgloss.NewStyle().Foreground(colorTextDim).Render(" " + s.message + "...")

	fmt.Fprintf(os.Stderr, "\r\033[K%s%s", spin, text)
}

func (s *spinner) halt() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stop)
	// Release before waiting: the animation goroutine takes the lock on
	// every tick and must be able to reach the stop channel.
	s.mu.Unlock()
	<-s.done
}

// stopWithSuccess ends the animation and prints a success line.
func (s *spinner) stopWithSuccess(message string) {
	s.halt()
	check := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓")
	fmt.Fprintf(os.Stderr, "%s %s\n", check, message)
}

// stopWithError ends the animation without a success line.
func (s *spinner) stopWithError() {
	s.halt()
	cross := lipgloss.NewStyle().Foreground(colorError).Render("✗")
	fmt.Fprintf(os.Stderr, "%s %s\n", cross, s.message)
}
