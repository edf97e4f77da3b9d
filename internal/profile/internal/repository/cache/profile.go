// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

//go:generate mockgen -source=./profile.go -package=cachemocks -destination=./mocks/profile.mock.go
type ProfileCache interface {
	Get(ctx context.Context, uid int64) (domain.Profile, error)
	Set(ctx context.Context, uid int64, profile domain.Profile) error
	Delete(ctx context.Context, uid int64) error
}

type ProfileECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

func NewProfileECache(c ecache.Cache) ProfileCache {
	return &ProfileECache{
		cache: &ecache.NamespaceCache{
			Namespace: "profile:",
			C:         c,
		},
		expiration: time.Minute * 10,
	}
}

func (c *ProfileECache) Get(ctx context.Context, uid int64) (domain.Profile, error) {
	var res domain.Profile
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return res, ErrKeyNotFound
	}
	if val.Err != nil {
		return res, val.Err
	}
	err := val.JSONScan(&res)
	return res, err
}

func (c *ProfileECache) Set(ctx context.Context, uid int64, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(uid), data, c.expiration)
}

func (c *ProfileECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *ProfileECache) key(uid int64) string {
	return "public:" + strconv.FormatInt(uid, 10)
}
