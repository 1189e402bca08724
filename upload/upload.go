package upload

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net"

	"github.com/jlaffaye/ftp"
	"golang.org/x/net/proxy"

	creator "github.com/xml-creator/xml-creator"
	"github.com/xml-creator/xml-creator/config"
)

type session interface {
	Login(user, password string) error
	ChangeDir(path string) error
	Stor(path string, r io.Reader) error
	Quit() error
}

type dialer func(ctx context.Context, server config.FTP) (session, error)

// Uploader stores files on an FTP server. Each upload uses its own FTP session.
type Uploader struct {
	server config.FTP
	dial   dialer
	Debug  bool
}

func NewUploader(server config.FTP) *Uploader {
	return &Uploader{
		server: server,
		dial:   dial,
	}
}

// Upload stores the content as 'name' in the configured FTP directory.
func (u *Uploader) Upload(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: upload of %v cancelled (%v)", creator.ErrTransfer, name, err)
	}

	address := u.server.Address()

	if u.Debug {
		log.Printf("%-5s FTP - host:%s  user:%s  dir:%s  TLS:%v", "DEBUG", address, u.server.User, u.server.Dir, u.server.TLS)
	}

	s, err := u.dial(ctx, u.server)
	if err != nil {
		return fmt.Errorf("%w: unable to connect to %v (%v)", creator.ErrTransfer, address, err)
	}

	defer func() {
		if err := s.Quit(); err != nil {
			log.Printf("%-5s FTP QUIT %v (%v)", "WARN", address, err)
		}
	}()

	if err := s.Login(u.server.User, u.server.Pass); err != nil {
		return fmt.Errorf("%w: login to %v as %v failed (%v)", creator.ErrTransfer, address, u.server.User, err)
	}

	if err := s.ChangeDir(u.server.Dir); err != nil {
		return fmt.Errorf("%w: unable to change to directory %v (%v)", creator.ErrTransfer, u.server.Dir, err)
	}

	if err := s.Stor(name, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("%w: unable to store %v (%v)", creator.ErrTransfer, name, err)
	}

	return nil
}

// dial opens an FTP connection, going through the proxy named by ALL_PROXY (subject to NO_PROXY) if
// one is set.
func dial(ctx context.Context, server config.FTP) (session, error) {
	forward := proxy.FromEnvironmentUsing(&net.Dialer{Timeout: server.Timeout})

	options := []ftp.DialOption{
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(server.Timeout),
		ftp.DialWithDialFunc(forward.Dial),
	}

	if server.TLS {
		host, _, _ := net.SplitHostPort(server.Address())
		options = append(options, ftp.DialWithExplicitTLS(&tls.Config{ServerName: host}))
	}

	c, err := ftp.Dial(server.Address(), options...)
	if err != nil {
		return nil, err
	}

	return c, nil
}
