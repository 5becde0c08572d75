package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

func New(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcService := NewBlogService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("blog", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "blog-portal", nil))

	return rpcServer
}
