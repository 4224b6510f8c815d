package config

import "github.com/namsral/flag"

type Config struct {
	LogLevel       string
	BookPath       string
	PresearchDepth int
	NormalDepth    int
	WLDDepth       int
	PerfectDepth   int
	ComputerFirst  bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("reversi", flag.ContinueOnError)
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level (debug, info, disabled)")
	fs.StringVar(&c.BookPath, "book-path", "./data/reversi.book", "path to the opening book database")
	fs.IntVar(&c.PresearchDepth, "presearch-depth", 3, "shallow search depth used to order root moves")
	fs.IntVar(&c.NormalDepth, "normal-depth", 15, "search depth through the opening and middlegame")
	fs.IntVar(&c.WLDDepth, "wld-depth", 15, "remaining discs at which win/loss/draw solving starts")
	fs.IntVar(&c.PerfectDepth, "perfect-depth", 13, "remaining discs at which perfect solving starts")
	fs.BoolVar(&c.ComputerFirst, "computer-first", false, "computer plays black and moves first")
	err := fs.Parse(args)
	return err
}
