// Command matchd runs the single-symbol matching engine behind a gRPC
// listener. The matching mode is chosen once, from the first positional
// argument, and never changes for the process lifetime (§6).
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"matchd/engine"
	"matchd/publish"
	"matchd/transport/grpcapi"
	"matchd/transport/matchpb"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	tomb "gopkg.in/tomb.v2"
)

func main() {
	addr := flag.String("addr", "0.0.0.0:50051", "gRPC listen address")
	symbol := flag.String("symbol", "AAPL", "instrument this engine matches")
	redisURL := flag.String("redis", "redis://127.0.0.1:6379/0", "Redis URL for trade publication")
	flag.Parse()

	modeArg := "fifo"
	if args := flag.Args(); len(args) > 0 {
		modeArg = args[0]
	}
	mode := engine.ParseMode(modeArg)
	log.Info().Str("mode", mode.String()).Str("symbol", *symbol).Msg("matching mode selected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, err := redis.ParseURL(*redisURL)
	if err != nil {
		log.Error().Err(err).Msg("invalid redis url, trade publication disabled")
	}
	var publisher *publish.Publisher
	if opts != nil {
		publisher = publish.New(redis.NewClient(opts))
	}

	book := engine.NewBook(mode)
	svc := grpcapi.New(*symbol, book, publisher)

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Error().Err(err).Str("addr", *addr).Msg("unable to start listener")
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	matchpb.RegisterOrderMatchingServer(grpcServer, svc)

	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		log.Info().Str("addr", *addr).Msg("matchd listening")
		return grpcServer.Serve(listener)
	})
	t.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("matchd shutting down")
		grpcServer.GracefulStop()
		return nil
	})

	if err := t.Wait(); err != nil && err != grpc.ErrServerStopped {
		log.Error().Err(err).Msg("matchd exited with error")
		os.Exit(1)
	}
}
