package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	creator "github.com/xml-creator/xml-creator"
)

// FTP holds the connection settings for the server the XML document is uploaded to.
type FTP struct {
	Host    string        `yaml:"host"`
	User    string        `yaml:"user"`
	Pass    string        `yaml:"pass"`
	Dir     string        `yaml:"dir"`
	TLS     bool          `yaml:"tls"`
	Timeout time.Duration `yaml:"timeout"`
}

// Server is the server configuration file.
type Server struct {
	FTP FTP `yaml:"FTP"`
}

// LoadServer parses and validates a server configuration file.
func LoadServer(path string) (*Server, error) {
	bytes, err := read(path)
	if err != nil {
		return nil, err
	}

	s := Server{}
	if err := yaml.Unmarshal(bytes, &s); err != nil {
		return nil, fmt.Errorf("%w: invalid server file %v (%v)", creator.ErrConfiguration, path, err)
	}

	if s.FTP.Timeout == 0 {
		s.FTP.Timeout = defaultFTPTimeout * time.Second
	}

	if err := s.FTP.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (f FTP) Validate() error {
	missing := []string{}
	if strings.TrimSpace(f.Host) == "" {
		missing = append(missing, "FTP.host")
	}

	if f.User == "" {
		missing = append(missing, "FTP.user")
	}

	if f.Pass == "" {
		missing = append(missing, "FTP.pass")
	}

	if strings.TrimSpace(f.Dir) == "" {
		missing = append(missing, "FTP.dir")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing '%s'", creator.ErrConfiguration, strings.Join(missing, "', '"))
	}

	if f.Timeout < 0 {
		return fmt.Errorf("%w: invalid 'FTP.timeout' (%v)", creator.ErrConfiguration, f.Timeout)
	}

	return nil
}

// Address returns the host:port of the FTP server, defaulting to port 21.
func (f FTP) Address() string {
	host := strings.TrimSpace(f.Host)
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}

	return net.JoinHostPort(strings.Trim(host, "[]"), defaultFTPPort)
}
