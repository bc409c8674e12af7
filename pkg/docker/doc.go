// Package docker runs disposable ClickHouse servers for integration tests using
// testcontainers-go.
//
//	container := docker.New(docker.Options{Version: "25.7"})
//	if err := container.Start(ctx); err != nil {
//		t.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	dsn, err := container.DSN(ctx)
package docker
