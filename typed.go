package chaise

import (
	"github.com/aretw0/chaise/pkg/core"
	"github.com/aretw0/chaise/pkg/typed"
)

// TypedRepository is a public alias for the typed repository.
type TypedRepository[T any] = typed.Repository[T]

// TypedService is a public alias for the typed service.
type TypedService[T any] = typed.Service[T]

// NewTypedRepository creates a type-safe wrapper around an existing repository.
func NewTypedRepository[T any](repo core.Repository) *typed.Repository[T] {
	return typed.NewRepository[T](repo)
}

// NewTypedService creates a type-safe wrapper around an existing service.
func NewTypedService[T any](svc *core.Service) *typed.Service[T] {
	return typed.NewService[T](svc)
}

// OpenTypedService simplifies creating a TypedService from a server address.
func OpenTypedService[T any](uri string, opts ...Option) (*typed.Service[T], error) {
	svc, err := New(uri, opts...)
	if err != nil {
		return nil, err
	}
	return typed.NewService[T](svc), nil
}
