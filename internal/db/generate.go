package db

//go:generate go run github.com/sqlc-dev/sqlc/cmd/sqlc generate -f ../../sqlc.yaml
//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/querier_mock.go gitinsights-api/internal/db Querier
