// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
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
//	-a gateway address in format [host]:[port]
//	-hello-address hello service address in format [host]:[port]
//	-request-timeout gateway request timeout (e.g. "30s")
//	-weather-url weather service base URL
//	-ip-url IP lookup service base URL
//	-hello-url hello service base URL
//	-hello-ca-file PEM file trusted when calling the hello service
//	-downstream-timeout outbound call timeout (e.g. "10s")
//	-cert-file hello service key/certificate file
//	-common-name common name of a newly issued certificate
//	-log-file composite log file
//	-log-name composite logger name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, helloAddress NetAddress
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Gateway net address host:port")
	fs.Var(&helloAddress, "hello-address", "Hello service net address host:port")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Gateway request timeout (e.g. 30s)")
	fs.StringVar(&cfg.Downstream.WeatherURL, "weather-url", "", "Weather service base URL")
	fs.StringVar(&cfg.Downstream.GetIPURL, "ip-url", "", "IP lookup service base URL")
	fs.StringVar(&cfg.Downstream.HelloURL, "hello-url", "", "Hello service base URL")
	fs.StringVar(&cfg.Downstream.HelloCAFile, "hello-ca-file", "", "PEM file trusted when calling the hello service")
	fs.DurationVar(&cfg.Downstream.Timeout, "downstream-timeout", 0, "Outbound call timeout (e.g. 10s)")
	fs.StringVar(&cfg.Hello.CertFile, "cert-file", "", "Hello service key/certificate file")
	fs.StringVar(&cfg.Hello.CommonName, "common-name", "", "Common name of a newly issued certificate")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Composite log file")
	fs.StringVar(&cfg.Log.Name, "log-name", "", "Composite logger name")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Hello.Address = helloAddress.String()

	return cfg, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
