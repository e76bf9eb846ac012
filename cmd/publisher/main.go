package main

import (
	"fmt"
	"os"

	"github.com/architeacher/svc-project-messaging/internal/cli"
	"github.com/architeacher/svc-project-messaging/internal/config"
	"github.com/architeacher/svc-project-messaging/internal/runtime"
)

func main() {
	run := func(fn runtime.PublishFunc) error {
		return runtime.NewPublisher().Run(fn)
	}

	version := config.ServiceVersion
	if version == "" {
		version = "dev"
	}

	if err := cli.NewRootCmd(run, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
