package cmd

import (
	"github.com/jimezsa/jobboard/internal/web"
)

type ServeCmd struct {
	Addr string `help:"Listen address (overrides config)." placeholder:"HOST:PORT"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	backend, err := ctx.backend()
	if err != nil {
		return err
	}
	server, err := web.NewServer(backend, ctx.Logger)
	if err != nil {
		return err
	}

	addr := s.Addr
	if addr == "" {
		addr = ctx.Config.ListenAddr
	}
	ctx.UI.Infof("Serving on http://%s (api: %s)", addr, ctx.Config.APIURL)
	return server.Run(ctx.context(), addr)
}
