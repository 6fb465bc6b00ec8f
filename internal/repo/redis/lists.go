package redis

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/lueurxax/singlell/pkg/singlell"
)

var (
	ErrNotFound   = errors.New("list snapshot not found")
	ErrBadVersion = errors.New("malformed schema version")
)

type listsRepo interface {
	SaveList(ctx context.Context, name string, list *singlell.List[string]) error
	GetList(ctx context.Context, name string) (*singlell.List[string], error)
	DeleteList(ctx context.Context, name string) error
	ListNames(ctx context.Context) ([]string, error)
}

func (d *db) SaveList(ctx context.Context, name string, list *singlell.List[string]) error {
	data, err := jsoniter.MarshalToString(list)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode list %q", name)
	}

	return d.db.Set(ctx, string(d.keyBuilder.List(name)), data, 0).Err()
}

func (d *db) GetList(ctx context.Context, name string) (*singlell.List[string], error) {
	data, err := d.db.Get(ctx, string(d.keyBuilder.List(name))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, pkgerrors.Wrap(ErrNotFound, name)
		}
		return nil, err
	}

	list := singlell.New[string]()
	if err = jsoniter.UnmarshalFromString(data, list); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode list %q", name)
	}

	return list, nil
}

func (d *db) DeleteList(ctx context.Context, name string) error {
	removed, err := d.db.Del(ctx, string(d.keyBuilder.List(name))).Result()
	if err != nil {
		return err
	}

	if removed == 0 {
		return pkgerrors.Wrap(ErrNotFound, name)
	}

	return nil
}

func (d *db) ListNames(ctx context.Context) ([]string, error) {
	var cursor uint64
	names := make([]string, 0)
	for {
		var keys []string
		var err error
		keys, cursor, err = d.db.Scan(ctx, cursor, string(d.keyBuilder.Lists())+"*", 0).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			names = append(names, d.keyBuilder.Name([]byte(key)))
		}

		if cursor == 0 {
			break
		}
	}

	return names, nil
}
