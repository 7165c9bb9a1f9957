// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-remote-url remote API base URL
//	-remote-username remote API username
//	-remote-password remote API password
//	-remote-timeout remote request timeout (e.g. "30s")
//	-sync-interval sync period in minutes
//	-token-file credential file path
//	-log-level log level
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress  NetAddress
		databaseDSN    string
		jsonConfigPath string
		remoteURL      string
		remoteUsername string
		remotePassword string
		remoteTimeout  time.Duration
		syncInterval   int
		tokenFile      string
		logLevel       string
	)

	fs := flag.NewFlagSet("device-sync", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&remoteURL, "remote-url", "", "Remote API base URL")
	fs.StringVar(&remoteUsername, "remote-username", "", "Remote API username")
	fs.StringVar(&remotePassword, "remote-password", "", "Remote API password")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 30s)")
	fs.IntVar(&syncInterval, "sync-interval", 0, "Sync interval in minutes")
	fs.StringVar(&tokenFile, "token-file", "", "Credential file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Remote: Remote{
			BaseURL:        remoteURL,
			Username:       remoteUsername,
			Password:       remotePassword,
			RequestTimeout: remoteTimeout,
		},
		Storage: Storage{
			TokenFile: tokenFile,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Workers: Workers{
			SyncIntervalMinutes: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; otherwise host must be
// "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
