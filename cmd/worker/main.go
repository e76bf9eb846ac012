package main

import (
	"github.com/architeacher/svc-project-messaging/internal/runtime"
)

func main() {
	runtime.NewSubscriber().Run()
}
