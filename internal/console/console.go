package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetberacelik/legalcase/internal/service"
	"github.com/ahmetberacelik/legalcase/pkg/logger"
)

const inputTimeLayout = "2006-01-02 15:04"

// Console is the interactive menu surface. It owns one Session and passes
// it into every auth call; all other state lives in the services.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log *logger.Logger

	sess      *service.Session
	auth      *service.AuthService
	cases     *service.CaseService
	clients   *service.ClientService
	hearings  *service.HearingService
	documents *service.DocumentService
}

func New(in io.Reader, out io.Writer, log *logger.Logger,
	auth *service.AuthService, cases *service.CaseService, clients *service.ClientService,
	hearings *service.HearingService, documents *service.DocumentService) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		log:       log,
		sess:      service.NewSession(),
		auth:      auth,
		cases:     cases,
		clients:   clients,
		hearings:  hearings,
		documents: documents,
	}
}

// Run drives the menu tree until the user exits or input ends.
func (c *Console) Run() {
	c.printf("=== Legal Case Manager ===\n")

	for {
		if !c.sess.IsLoggedIn() {
			if !c.authMenu() {
				return
			}
			continue
		}
		if !c.mainMenu() {
			return
		}
	}
}

func (c *Console) mainMenu() bool {
	c.printf("\n--- Main Menu ---\n")
	c.printf("1. Cases\n")
	c.printf("2. Clients\n")
	c.printf("3. Hearings\n")
	c.printf("4. Documents\n")
	if c.auth.IsAdmin(c.sess) {
		c.printf("5. Users\n")
	}
	c.printf("6. Logout\n")
	c.printf("0. Exit\n")

	choice, ok := c.promptInt("Select an option")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		return c.caseMenu()
	case 2:
		return c.clientMenu()
	case 3:
		return c.hearingMenu()
	case 4:
		return c.documentMenu()
	case 5:
		if c.auth.IsAdmin(c.sess) {
			return c.userMenu()
		}
		c.printf("Unknown option\n")
	case 6:
		c.auth.Logout(c.sess)
		c.printf("Logged out\n")
	case 0:
		return false
	default:
		c.printf("Unknown option\n")
	}
	return true
}

// printf writes to the console output.
func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// prompt reads one trimmed line; ok is false when input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptInt(label string) (int, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			c.printf("Please enter a number\n")
			continue
		}
		return n, true
	}
}

func (c *Console) promptUint(label string) (uint, bool) {
	for {
		text, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			c.printf("Please enter a positive number\n")
			continue
		}
		return uint(n), true
	}
}

// promptTime parses a "YYYY-MM-DD HH:MM" value in local time.
func (c *Console) promptTime(label string) (time.Time, bool) {
	for {
		text, ok := c.prompt(label + " (YYYY-MM-DD HH:MM)")
		if !ok {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation(inputTimeLayout, text, time.Local)
		if err != nil {
			c.printf("Invalid date, expected format 2024-01-31 14:30\n")
			continue
		}
		return t, true
	}
}

// promptOptional returns nil when the user leaves the field empty.
func (c *Console) promptOptional(label string) (*string, bool) {
	text, ok := c.prompt(label + " (empty to skip)")
	if !ok {
		return nil, false
	}
	if text == "" {
		return nil, true
	}
	return &text, true
}

// reportError shows validation messages verbatim and hides storage detail
// behind a generic message, logging the cause.
func (c *Console) reportError(err error) {
	if service.IsValidation(err) {
		c.printf("Error: %s\n", err.Error())
		return
	}
	if errors.Is(err, service.ErrStorage) {
		c.log.Error("storage failure", "error", err)
		c.printf("Error: an internal storage error occurred\n")
		return
	}
	c.printf("Error: %s\n", err.Error())
}
