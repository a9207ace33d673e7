package cli

import (
	"context"

	"nxtool.dev/cli/internal/infrastructure/serialport"
	"nxtool.dev/cli/internal/logging"
)

// devicePortFinder resolves a target board to a serial port by USB
// identity. With exactly one matching device it is used directly; with
// several, an interactive picker asks the user.
type devicePortFinder struct {
	console *logging.Console
}

func (f *devicePortFinder) Find(ctx context.Context, target string) (string, error) {
	ports, err := serialport.List()
	if err != nil {
		return "", err
	}

	matched := serialport.MatchTarget(ports, target)
	switch len(matched) {
	case 0:
		return "", nil
	case 1:
		return matched[0].Device, nil
	default:
		f.console.Info("Multiple %s devices attached", target)
		return pickPort(ctx, matched)
	}
}
