package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"
)

var ErrNoCredential = errors.New("GitHub installation ID not configured")

// CredentialProvider yields an authenticated HTTP client for an installation.
// An empty installationID asks for the provider's default credential.
type CredentialProvider interface {
	HTTPClient(ctx context.Context, installationID string) (*http.Client, error)
}

// TokenProvider authenticates every request with one personal access token.
type TokenProvider struct {
	Token string
}

func (p TokenProvider) HTTPClient(ctx context.Context, _ string) (*http.Client, error) {
	if strings.TrimSpace(p.Token) == "" {
		return nil, ErrNoCredential
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: p.Token})), nil
}

// AppProvider authenticates as a GitHub App installation.
type AppProvider struct {
	AppID                 int64
	PrivateKey            []byte
	DefaultInstallationID string
	BaseURL               string
	Transport             http.RoundTripper

	mu         sync.Mutex
	transports map[int64]*ghinstallation.Transport
}

func (p *AppProvider) HTTPClient(_ context.Context, installationID string) (*http.Client, error) {
	id := strings.TrimSpace(installationID)
	if id == "" {
		id = strings.TrimSpace(p.DefaultInstallationID)
	}
	if id == "" {
		return nil, ErrNoCredential
	}

	installation, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid installation ID %q: %w", id, err)
	}

	tr, err := p.transport(installation)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: tr}, nil
}

// Installation tokens are cached inside each transport, so transports are reused.
func (p *AppProvider) transport(installation int64) (*ghinstallation.Transport, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if tr, ok := p.transports[installation]; ok {
		return tr, nil
	}

	base := p.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	tr, err := ghinstallation.New(base, p.AppID, installation, p.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("creating installation transport: %w", err)
	}
	if p.BaseURL != "" {
		tr.BaseURL = strings.TrimSuffix(p.BaseURL, "/")
	}

	if p.transports == nil {
		p.transports = make(map[int64]*ghinstallation.Transport)
	}
	p.transports[installation] = tr
	return tr, nil
}

// Connector hands out a Client bound to the credential of one installation.
type Connector interface {
	Connect(ctx context.Context, installationID string) (Client, error)
}

type connector struct {
	creds   CredentialProvider
	baseURL string
}

func NewConnector(creds CredentialProvider, baseURL string) Connector {
	return &connector{creds: creds, baseURL: baseURL}
}

func (c *connector) Connect(ctx context.Context, installationID string) (Client, error) {
	if c.creds == nil {
		return nil, ErrNoCredential
	}

	httpClient, err := c.creds.HTTPClient(ctx, installationID)
	if err != nil {
		return nil, err
	}

	ghClient := gh.NewClient(httpClient)
	if c.baseURL != "" {
		ghClient, err = ghClient.WithEnterpriseURLs(c.baseURL, c.baseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring enterprise URL: %w", err)
		}
	}
	return NewFromHTTPClient(ghClient), nil
}
