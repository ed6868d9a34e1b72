// Command luach is the command-line front end of the Hebrew calendar
// engine.
//
// Usage:
//
//	luach day [YYYY-MM-DD]
//	luach year [hebrew-year]
//	luach daf <cycle> [YYYY-MM-DD] [--days N]
//	luach generate --from YYYY-MM-DD --to YYYY-MM-DD [--both]
//	luach check --from YYYY-MM-DD --to YYYY-MM-DD
//	luach cycles [name...]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
