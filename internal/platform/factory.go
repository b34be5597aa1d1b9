package platform

import (
	"github.com/aretw0/chaise/pkg/core"
)

// svc, err := chaise.New("http://127.0.0.1:5984", chaise.WithDatabase("notes"))
// The URI argument is adapter-specific (the server base address for 'couch').
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}
	return newService(repo, applyOptions(opts)), nil
}

func newService(repo core.Repository, o *options) *core.Service {
	readOnly, _ := o.config["read_only"].(bool)
	return core.NewService(repo,
		core.WithServiceLogger(o.logger),
		core.WithServiceReadOnly(readOnly),
	)
}

// Connect builds a service without running repository initialization.
func Connect(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Open(uri, opts...)
	if err != nil {
		return nil, err
	}
	return newService(repo, applyOptions(opts)), nil
}
