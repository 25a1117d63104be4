package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"snb-go/core"
	"snb-go/social"
)

// Client wires the session plumbing and the operation managers together.
type Client struct {
	Wrapper       core.WebWrapperInterface
	ConfigManager *core.ConfigManager
	Session       *core.Session
	Profiles      *social.ProfileManager
	Reactions     *social.ReactionManager

	files *core.FileManager
}

// NewClient creates a new Client from a config file. A nil wrapper builds the
// real cookie-jar transport from the configured credentials; passing one in
// (the mock, for dry runs) skips that.
func NewClient(ctx context.Context, configPath string, reader io.Reader, wrapper core.WebWrapperInterface) (*Client, error) {
	cm, err := core.NewConfigManager(configPath, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	config := cm.GetConfig()

	if wrapper == nil {
		ww, err := core.NewWebWrapper(config.Bot.Server, config.Credentials["user_agent"], config.Credentials["cookie"])
		if err != nil {
			return nil, fmt.Errorf("failed to create web wrapper: %w", err)
		}
		wrapper = ww
	}
	return NewClientWithDeps(ctx, cm, wrapper)
}

// NewClientWithDeps creates a new Client with dependencies. A persisted
// session snapshot is reused when present; otherwise the platform shell is
// fetched and the snapshot saved for the next run.
func NewClientWithDeps(ctx context.Context, cm *core.ConfigManager, wrapper core.WebWrapperInterface) (*Client, error) {
	config := cm.GetConfig()
	files := core.NewFileManager(config.Bot.StateDir)

	session, err := core.RestoreSession(wrapper, files)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("ignoring unreadable session snapshot")
		}
		session, err = core.Login(ctx, wrapper, config.Credentials["user_id"])
		if err != nil {
			return nil, fmt.Errorf("failed to establish session: %w", err)
		}
		// Only real sessions are worth caching; a mock transport would
		// overwrite a usable snapshot with its canned token.
		if _, real := wrapper.(*core.WebWrapper); real {
			if err := session.Persist(files); err != nil {
				log.Warn().Err(err).Msg("failed to persist session snapshot")
			}
		}
	}

	return &Client{
		Wrapper:       wrapper,
		ConfigManager: cm,
		Session:       session,
		Profiles:      social.NewProfileManager(session),
		Reactions:     social.NewReactionManager(session),
		files:         files,
	}, nil
}

// Refresh discards the persisted snapshot and re-establishes the session.
func (c *Client) Refresh(ctx context.Context) error {
	config := c.ConfigManager.GetConfig()
	session, err := core.Login(ctx, c.Wrapper, config.Credentials["user_id"])
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	c.Session = session
	c.Profiles = social.NewProfileManager(session)
	c.Reactions = social.NewReactionManager(session)
	if _, real := c.Wrapper.(*core.WebWrapper); real {
		if err := session.Persist(c.files); err != nil {
			log.Warn().Err(err).Msg("failed to persist session snapshot")
		}
	}
	return nil
}
