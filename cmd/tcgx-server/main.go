// Command tcgx-server runs the duel Service behind both transports: the
// line-oriented TCP protocol and the websocket-based web UI, adapted
// from the teacher's separate cmd/web and cmd/tcgx-cli entry points.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/tcgx-game/duelcore/internal/catalog"
	elog "github.com/tcgx-game/duelcore/internal/log"
	"github.com/tcgx-game/duelcore/internal/service"
	"github.com/tcgx-game/duelcore/internal/store"
	"github.com/tcgx-game/duelcore/internal/transport/tcpserver"
	"github.com/tcgx-game/duelcore/internal/transport/webserver"
)

func main() {
	tcpPort := flag.String("tcp-port", "9999", "TCP port for the duel protocol")
	httpPort := flag.Int("http-port", 8080, "HTTP port for the web UI")
	decksFile := flag.String("decks", "decks.yaml", "path to decks YAML file")
	flag.Parse()

	cat := catalog.Default()
	if _, err := os.Stat(*decksFile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: decks file %q not readable: %v\n", *decksFile, err)
	}

	svc := service.New(store.NewMemStore(), cat, elog.NewTextLogger(os.Stdout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 2)

	go func() {
		tcp := &tcpserver.Server{Svc: svc, Port: *tcpPort}
		log.Printf("tcgx duel protocol listening on :%s", *tcpPort)
		errCh <- tcp.Run(ctx)
	}()

	go func() {
		web := webserver.NewServer(svc, cat, *decksFile)
		addr := fmt.Sprintf(":%d", *httpPort)
		log.Printf("tcgx web UI listening on http://localhost%s", addr)
		srv := &http.Server{Addr: addr, Handler: web.Handler()}
		go func() {
			<-ctx.Done()
			srv.Close()
		}()
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	if err := <-errCh; err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
