package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jimezsa/jobboard/internal/api"
	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/network"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

const proxyBanDuration = 10 * time.Minute

// Backend reads and writes the job collection. *api.Client satisfies it.
type Backend interface {
	List(ctx context.Context) ([]models.JobPosting, error)
	Create(ctx context.Context, posting models.JobPosting) error
}

type Context struct {
	Ctx        context.Context
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Backend replaces the HTTP client when set.
	Backend Backend
}

func (c *Context) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// backend returns the injected backend or an API client for the configured URL.
func (c *Context) backend() (Backend, error) {
	if c.Backend != nil {
		return c.Backend, nil
	}
	return newAPIClient(c.Config, c.Logger)
}

func newAPIClient(cfg config.Config, logger zerolog.Logger) (*api.Client, error) {
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("api url is not configured (set api_url or JOBBOARD_API_URL)")
	}

	proxies, err := config.LoadProxies("")
	if err != nil {
		return nil, fmt.Errorf("load proxies: %w", err)
	}
	var rotator *network.Rotator
	if len(proxies) > 0 {
		rotator, err = network.NewRotator(proxies, proxyBanDuration)
		if err != nil {
			return nil, err
		}
		logger.Debug().Int("proxies", rotator.Len()).Msg("using proxy rotation")
	}

	transport, err := network.NewClient(network.Options{
		Timeout: cfg.RequestTimeout(),
		Rotator: rotator,
	})
	if err != nil {
		return nil, err
	}
	return api.NewClient(transport, cfg.APIURL, logger)
}
