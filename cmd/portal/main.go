package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/internal/ui"
	"github.com/jagath-ds/XCalibr-AI-Hiring-System/portal"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newCLI(stdout, stderr)
	defer func() { _ = c.close() }()

	root := c.rootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("Command failed")
		var signIn *signInRequiredError
		if errors.As(err, &signIn) {
			ui.Notice(stderr, "%s", signIn.Error())
		} else {
			ui.Failure(stderr, "%s", portal.UserMessage(err, err.Error()))
		}
		return err
	}
	return nil
}

func displayAppname(w io.Writer, appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	_, _ = fmt.Fprint(w, myFigure.String())
	_, _ = fmt.Fprintln(w)
}
