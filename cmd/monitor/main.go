// Command monitor is the terminal version of the status board: it polls
// pos-service, lists orders em preparo and prontos, and announces each
// order that becomes ready with a chime and a callout.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jaomarks/eternapdv/internal/client"
	"github.com/Jaomarks/eternapdv/internal/config"
	"github.com/Jaomarks/eternapdv/internal/metrics"
	"github.com/Jaomarks/eternapdv/internal/monitor"
	"github.com/Jaomarks/eternapdv/internal/order"
	"github.com/Jaomarks/eternapdv/internal/view"
)

func main() {
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	api := client.New(cfg.BaseURL)
	notifier := monitor.NewNotifier(monitor.Bell{W: os.Stdout})
	if !cfg.SoundEnabled {
		notifier.SetSound(false)
	}

	log.Printf("monitor polling %s every %s", cfg.BaseURL, cfg.MonitorPoll)

	poller := view.NewPoller(api, order.Filter{Status: order.StatusReady}, cfg.MonitorPoll)
	poller.Run(ctx, func(ready order.Snapshot, err error) {
		if err != nil {
			log.Printf("[monitor] fetch falhou: %v", err)
			return
		}

		if announced := notifier.Observe(ready); announced != nil {
			metrics.ReadyAlerts.Inc()
			fmt.Printf("\n*** PEDIDO PRONTO! %s (Pedido #%d) ***\n\n", announced.CustomerName, announced.ID)
		}

		preparing, err := api.Snapshot(order.Filter{Status: order.StatusPreparing})
		if err != nil {
			log.Printf("[monitor] fetch falhou: %v", err)
			return
		}
		render(preparing.Orders, ready.Orders)
	})
}

func render(preparing, ready []order.Order) {
	fmt.Println("== Em Preparo ==")
	if len(preparing) == 0 {
		fmt.Println("  (nenhum)")
	}
	for _, o := range preparing {
		fmt.Printf("  #%d  %s\n", o.ID, o.CustomerName)
	}
	fmt.Println("== Prontos ==")
	if len(ready) == 0 {
		fmt.Println("  (nenhum)")
	}
	for _, o := range ready {
		fmt.Printf("  #%d  %s\n", o.ID, o.CustomerName)
	}
	fmt.Println()
}
