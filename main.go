package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/reversi/book"
	"github.com/domino14/reversi/cache"
	"github.com/domino14/reversi/config"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		panic(err)
	}

	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Debug().Msg("Debug logging is on")

	bk := loadBook(cfg.BookPath)

	shellLoop(cfg, bk)
	log.Info().Msg("bye")
}

func loadBook(path string) *book.Book {
	obj, err := cache.Load("book:"+path, func(string) (interface{}, error) {
		return book.Load(path)
	})
	if err != nil {
		log.Err(err).Str("path", path).Msg("could not load opening book; playing without one")
		return nil
	}
	return obj.(*book.Book)
}
