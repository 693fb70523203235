package main

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/bunsetu/storage/sqlite/zombiezen"
)

// Pool opens at most one SQLite file per command run and closes it in the
// app After hook.
type Pool struct {
	path string
	p    *sqlitex.Pool
}

// Open returns the pool of path, opening it on first use.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if p.path != path {
			return nil, fmt.Errorf("pool already open at %s, cannot open %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}

	p.path, p.p = path, pool
	return pool, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}

	err := p.p.Close()
	p.path, p.p = "", nil
	return err
}
