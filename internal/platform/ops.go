package platform

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/chaise/pkg/adapters/couch"
	"github.com/aretw0/chaise/pkg/core"
)

// Init builds the repository for uri and runs its initialization.
// The 'uri' argument is adapter-specific (the server base address for 'couch').
//
// It returns the configured core.Repository.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := applyOptions(opts)

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	var err error

	switch o.adapter {
	case "couch":
		repo, err = initCouch(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// Open builds the repository for uri without contacting the server.
func Open(uri string, opts ...Option) (core.Repository, error) {
	o := applyOptions(opts)
	if o.repository != nil {
		return o.repository, nil
	}
	switch o.adapter {
	case "couch":
		return initCouch(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}

// initCouch handles the configuration of the HTTP adapter.
func initCouch(uri string, o *options) (core.Repository, error) {
	database, _ := o.config["database"].(string)
	username, _ := o.config["username"].(string)
	password, _ := o.config["password"].(string)
	timeout, _ := o.config["timeout"].(time.Duration)
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	readOnly, _ := o.config["read_only"].(bool)

	if o.logger != nil && readOnly {
		o.logger.Debug("running in READ-ONLY mode", "db", database)
	}

	return couch.NewRepository(couch.Config{
		BaseURL:    uri,
		Database:   database,
		Username:   username,
		Password:   password,
		Timeout:    timeout,
		AutoInit:   autoInit,
		MustExist:  mustExist,
		ReadOnly:   readOnly,
		Logger:     o.logger,
		HTTPClient: o.httpClient,
	})
}
