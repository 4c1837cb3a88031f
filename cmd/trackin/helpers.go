package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/trackinhq/trackin/internal/config"
	"github.com/trackinhq/trackin/internal/gateway"
	"github.com/trackinhq/trackin/internal/session"
)

const defaultGatewayURL = "http://127.0.0.1:8000/api"

// initSession opens the local session database with proper path expansion.
func initSession() (*session.Session, error) {
	dbPath := viper.GetString("session.path")
	if dbPath == "" {
		dbPath = config.DefaultSessionPath()
	}
	dbPath = config.ExpandPath(dbPath)

	sess, err := session.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return sess, nil
}

// initGateway builds a Gateway client backed by the session's credentials.
func initGateway(sess *session.Session) *gateway.Client {
	baseURL := viper.GetString("gateway.url")
	if baseURL == "" {
		baseURL = defaultGatewayURL
	}
	return gateway.NewClient(baseURL, sess)
}

// initServices opens the session and gateway together, the common prelude
// for every authenticated command.
func initServices() (*session.Session, *gateway.Client, error) {
	sess, err := initSession()
	if err != nil {
		return nil, nil, err
	}
	return sess, initGateway(sess), nil
}

// requireAuth rejects commands that need a stored credential.
func requireAuth(sess *session.Session) error {
	if sess.AccessToken() == "" {
		return fmt.Errorf("not logged in, run 'trackin login' first")
	}
	return nil
}
