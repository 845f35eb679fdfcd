package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	opts := defaultOptions()
	if err := execute(context.Background(), opts, newRootCommandWith(opts)); err != nil {
		if exitErr, ok := err.(exitError); ok {
			if !exitErr.silent && exitErr.message != "" {
				fmt.Fprintln(os.Stderr, exitErr.message)
			}
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

type exitError struct {
	code    int
	message string
	silent  bool
}

func (e exitError) Error() string {
	return e.message
}

// exitFailure reports a failed envelope: the message is printed, exit code 2
func exitFailure(message string) error {
	return exitError{code: 2, message: message}
}
