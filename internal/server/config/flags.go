package config

import (
	"flag"
	"os"

	"skillswap/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   address and port to listen on
//	-d string   Postgres DSN
//	-r string   Redis address (empty disables the cache)
//	-s string   token signing secret
//
// Arguments are filtered via flagx.FilterArgs so flags owned by other
// packages (e.g. -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-s"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
