//go:build tools

// Package tools pins the versions of development binaries:
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir migrations postgres "$DSN" status
//	go run github.com/golangci/golangci-lint/cmd/golangci-lint run ./...
//	go run github.com/vektra/mockery/v2 --dir internal/repository --all
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/vektra/mockery/v2"
)
