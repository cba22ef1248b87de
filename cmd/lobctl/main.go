// Command lobctl is a small batch harness around the book engine: it loads
// a REST-style snapshot and/or replays a newline-delimited JSON event log
// against a single in-process book.Book, then prints the resulting best
// bid/ask and depth. It performs no network I/O of its own — inputs are
// local files, matching the "no network I/O" boundary of the core engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/humdings/limitbook/book"
	"github.com/humdings/limitbook/internal/feed"
)

func main() {
	snapshotPath := flag.String("snapshot", "", "path to a JSON order-book snapshot")
	replayPath := flag.String("replay", "", "path to a newline-delimited JSON event log")
	tickSize := flag.Float64("tick-size", 0.01, "price quantum")
	maxPrice := flag.Float64("max-price", 1e9, "price ceiling used to derive the level cursor bound")
	verbose := flag.Bool("v", false, "debug-level logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	b := book.New(book.WithTickSize(*tickSize), book.WithMaxPrice(*maxPrice))

	if *snapshotPath != "" {
		f, err := os.Open(*snapshotPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *snapshotPath).Msg("unable to open snapshot")
		}
		n, err := feed.LoadSnapshot(f, b)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("unable to load snapshot")
		}
		log.Info().Int("rows", n).Msg("snapshot loaded")
	}

	if *replayPath != "" {
		f, err := os.Open(*replayPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *replayPath).Msg("unable to open replay log")
		}
		rp := feed.NewReplayer(f, b)
		err = rp.Run(context.Background())
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("replay failed")
		}
	}

	printBest(b)
	printDepth(b)
}

func printBest(b *book.Book) {
	bid, ask := b.BestBid(), b.BestAsk()
	fmt.Printf("best bid: %v\nbest ask: %v\n", bid, ask)
}

func printDepth(b *book.Book) {
	fmt.Println("depth:")
	for _, lvl := range b.Depth() {
		fmt.Printf("  level=%d price=%g bid=%g ask=%g\n", lvl.Level, lvl.Price, lvl.BidSize, lvl.AskSize)
	}
}
