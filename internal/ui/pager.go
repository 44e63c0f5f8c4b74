package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerEnv names an external pager command that replaces the embedded one
const PagerEnv = "NIMBUS_PAGER"

var errNoProgram = errors.New("program not set")

// Pager shows long text with the terminal released from Bubble Tea
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a pager; SetProgram must be called before Show
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Show pages content with ov, or with $NIMBUS_PAGER when set
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		fmt.Print("\x1b[2J\x1b[H")
		// give the pager time to exit before taking the terminal back
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	if fields := pagerCommand(); len(fields) > 0 {
		return runExternal(fields, strings.NewReader(content))
	}
	return runOv(strings.NewReader(content))
}

// pagerCommand splits $NIMBUS_PAGER into argv; empty when unset or blank
func pagerCommand() []string {
	return strings.Fields(os.Getenv(PagerEnv))
}

func runOv(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func runExternal(fields []string, r io.Reader) error {
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = r
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
