package redisimpls

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdecimate/chartfeed"
	"gopkg.in/yaml.v3"
)

func NewRedisFeedStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) chartfeed.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "feedStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &feedStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type feedStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *feedStorage) seriesKey(key string) string {
	return impl.preKey + ":series:" + key
}

func (impl *feedStorage) seriesKeysKey() string {
	return impl.preKey + ":series"
}

func (impl *feedStorage) Keys() (keys []string, err error) {
	keys, err = impl.redisCli.SMembers(context.Background(), impl.seriesKeysKey()).Result()

	return
}

func (impl *feedStorage) Load(key string) (samples []chartfeed.Sample, err error) {
	d, err := impl.redisCli.Get(context.Background(), impl.seriesKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return
	}

	err = yaml.Unmarshal([]byte(d), &samples)

	return
}

func (impl *feedStorage) Save(key string, samples []chartfeed.Sample) (err error) {
	d, err := yaml.Marshal(samples)
	if err != nil {
		return
	}

	pipe := impl.redisCli.TxPipeline()
	pipe.Set(context.Background(), impl.seriesKey(key), string(d), 0)
	pipe.SAdd(context.Background(), impl.seriesKeysKey(), key)

	_, err = pipe.Exec(context.Background())

	return
}
