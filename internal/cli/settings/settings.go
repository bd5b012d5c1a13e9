package settings

import (
	"fmt"
	"strconv"

	"github.com/duolog/duolog/internal/cli"
	"github.com/duolog/duolog/internal/models"
	"github.com/duolog/duolog/internal/utils"
)

type SettingsCmd struct {
	Show   SettingsShowCmd   `cmd:"" default:"1" help:"Show current settings."`
	Set    SettingsSetCmd    `cmd:"" help:"Change a setting."`
	Person SettingsPersonCmd `cmd:"" help:"Switch the current person."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Current person:  %s\n", s.CurrentPerson)
	fmt.Printf("Theme:           %s\n", s.Theme)
	fmt.Printf("Timezone:        %s\n", s.Timezone)
	fmt.Printf("Sound:           %s\n", onOff(s.SoundEnabled))
	fmt.Printf("Music:           %s\n", onOff(s.MusicEnabled))
	fmt.Printf("Shared why:      %s\n", s.SharedWhy)
	fmt.Printf("Quote:           %s\n", s.ManifestationQuote)
	if s.LastMirrorPush != "" {
		fmt.Printf("Last mirror push: %s\n", s.LastMirrorPush)
	}
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting to change: quote, why, theme, timezone, sound, or music."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Key {
	case "quote":
		s.ManifestationQuote = c.Value
	case "why":
		s.SharedWhy = c.Value
	case "theme":
		switch c.Value {
		case "sunrise", "midnight", "celebration":
			s.Theme = c.Value
		default:
			return fmt.Errorf("unknown theme %q (expected sunrise, midnight, or celebration)", c.Value)
		}
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("unknown timezone %q", c.Value)
		}
		s.Timezone = c.Value
	case "sound":
		v, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("sound expects true or false")
		}
		s.SoundEnabled = v
	case "music":
		v, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("music expects true or false")
		}
		s.MusicEnabled = v
	default:
		return fmt.Errorf("unknown setting %q", c.Key)
	}

	if err := ctx.Store.SaveSettings(s); err != nil {
		return err
	}

	fmt.Printf("Updated %s.\n", c.Key)
	return nil
}

type SettingsPersonCmd struct {
	Name string `arg:"" help:"Person to switch to: shubham or khushi."`
}

func (c *SettingsPersonCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	person, err := models.ParsePerson(c.Name)
	if err != nil {
		return err
	}

	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	s.CurrentPerson = person
	if err := ctx.Store.SaveSettings(s); err != nil {
		return err
	}

	fmt.Printf("Hello, %s! 👋\n", person)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
