// Command memorycache-demo exercises the memorycache library end to end:
// lazy expiration, the amortized full sweep, and function memoization.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/aikidos/memorycache"
	"github.com/aikidos/memorycache/internal/logutil"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cmd := &cli.Command{
		Name:  "memorycache-demo",
		Usage: "demonstrate TTL expiration, sweeping and memoization",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "lifetime for the demo entries",
				Value: 300 * time.Millisecond,
			},
			&cli.DurationFlag{
				Name:  "scan-interval",
				Usage: "full-scan sweep cadence (0 disables the sweep)",
				Value: 100 * time.Millisecond,
			},
			&cli.IntFlag{
				Name:  "entries",
				Usage: "number of entries to insert",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func run(_ context.Context, cmd *cli.Command) error {
	logutil.InitLogger(cmd.String("log-level"))

	ttl := cmd.Duration("ttl")
	scanEvery := cmd.Duration("scan-interval")
	entries := int(cmd.Int("entries"))

	log.WithField("ttl", ttl).WithField("scanInterval", scanEvery).Info("starting demo")

	c := memorycache.New[string, int](memorycache.WithFullScanInterval(scanEvery))

	// Insert short-lived entries plus one permanent entry.
	for i := 0; i < entries; i++ {
		key := fmt.Sprintf("key-%d", i)
		c.Set(key, i, ttl)
		log.WithField("key", key).Debug("set")
	}
	c.Set("permanent", -1, memorycache.NoExpiration)
	log.WithField("len", c.Len()).Info("entries inserted")

	if v, ok := c.Get("key-0"); ok {
		log.WithField("key", "key-0").WithField("value", v).Info("get before expiry")
	}

	// Let the entries expire, then show that Len still counts them until a
	// sweep or lazy touch removes them.
	time.Sleep(ttl + 50*time.Millisecond)
	log.WithField("len", c.Len()).Info("after expiry, before sweep")

	evicted := c.Sweep()
	log.WithField("evicted", evicted).WithField("len", c.Len()).Info("after sweep")

	if _, ok := c.Get("key-0"); !ok {
		log.WithField("key", "key-0").Info("get after expiry: miss")
	}
	if v, ok := c.Get("permanent"); ok {
		log.WithField("value", v).Info("permanent entry survived")
	}

	// Memoization: the second call is served from the cache.
	var fib func(int) int
	fib = memorycache.Memoize(func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	start := time.Now()
	v := fib(35)
	first := time.Since(start)

	start = time.Now()
	fib(35)
	second := time.Since(start)

	log.WithField("fib(35)", v).
		WithField("first", first).
		WithField("second", second).
		Info("memoized fibonacci")

	return nil
}
