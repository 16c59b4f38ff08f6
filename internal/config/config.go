package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

type Config struct {
	// Template settings
	TemplateDir         string
	AutoReloadTemplates bool

	// Timeline settings
	BasePixelsPerDay float64
	DefaultEventDays int

	// Display settings
	DateFormat string
	RowHeight  int

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Behavior settings
	ConfirmDelete bool
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		TemplateDir:         filepath.Join(home, ".config", "plotline", "templates"),
		AutoReloadTemplates: true,

		BasePixelsPerDay: 3,
		DefaultEventDays: 7,

		DateFormat: "Jan 2, 2006",
		RowHeight:  2,

		Colors: map[string]string{
			"blue":     "33",
			"green":    "35",
			"red":      "160",
			"default":  "245",
			"selected": "220",
			"today":    "214",
			"grid":     "238",
			"header":   "220",
		},

		KeyBindings: map[string]string{
			"quit":         "q",
			"help":         "?",
			"add_event":    "a",
			"edit_event":   "enter",
			"delete_event": "d",
			"add_row":      "A",
			"delete_row":   "D",
			"rename_row":   "R",
			"grab":         "g",
			"resize_start": "[",
			"resize_end":   "]",
			"undo":         "u",
			"redo":         "U",
			"zoom_in":      "+",
			"zoom_out":     "-",
			"gallery":      "T",
		},

		ConfirmDelete: true,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("PLOTLINE_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "plotline", "plotlinerc"),
		filepath.Join(os.Getenv("HOME"), ".config", "plotline", "plotlinerc"),
		filepath.Join(os.Getenv("HOME"), ".plotlinerc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

// LoadConfigFile loads defaults overlaid with one explicit config file.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Handle set commands: set variable value
	setRe := regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle bind commands: bind key action
	bindRe := regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}

	// Handle color commands: color element color_spec
	colorRe := regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "template_dir":
		// Expand ~ to home directory
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.TemplateDir = value

	case "auto_reload_templates":
		c.AutoReloadTemplates = strings.ToLower(value) == "true" || value == "1"

	case "base_pixels_per_day":
		px, err := strconv.ParseFloat(value, 64)
		if err != nil || px <= 0 {
			return fmt.Errorf("invalid base_pixels_per_day: %s", value)
		}
		c.BasePixelsPerDay = px

	case "default_event_days":
		days, err := strconv.Atoi(value)
		if err != nil || days <= 0 {
			return fmt.Errorf("invalid default_event_days: %s", value)
		}
		c.DefaultEventDays = days

	case "date_format":
		c.DateFormat = value

	case "row_height":
		height, err := strconv.Atoi(value)
		if err != nil || height < 1 {
			return fmt.Errorf("invalid row_height: %s", value)
		}
		c.RowHeight = height

	case "confirm_delete":
		c.ConfirmDelete = strings.ToLower(value) == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}
