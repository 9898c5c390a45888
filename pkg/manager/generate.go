package manager

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_clients.go github.com/ksym/mikanz/pkg/manager TrackerClient,MetadataClient
